// Package upstream is the HTTP client for the remote pet API the dashboard
// moderates. Every call sends JSON, a non-2xx response becomes an *Error
// carrying the body text, and a 204 yields a nil payload.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: httpClient,
	}
}

// BaseURL returns the configured base with trailing slashes stripped. Image
// URLs are rewritten absolute against it during normalization.
func (c *Client) BaseURL() string {
	return c.base
}

type ListPetsParams struct {
	Page   int
	Limit  int
	Search string
	Age    string
}

func (c *Client) ListUsers(ctx context.Context, page, limit int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.do(ctx, http.MethodGet, "/admin/api/user/list", q, nil)
}

func (c *Client) BanUser(ctx context.Context, userID string, isBan bool) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/api/user/banUser", nil, map[string]any{
		"userId": userID,
		"isBan":  isBan,
	})
	return err
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/api/user/"+url.PathEscape(userID), nil, nil)
	return err
}

func (c *Client) BlockUserPhoto(ctx context.Context, userID string, isBlocked bool) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/api/user/blockuserphoto", nil, map[string]any{
		"userId":    userID,
		"isBlocked": isBlocked,
	})
	return err
}

func (c *Client) ListPets(ctx context.Context, params ListPetsParams) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(params.Limit))
	if s := strings.TrimSpace(params.Search); s != "" {
		q.Set("search", s)
	}
	if params.Age != "" {
		q.Set("age", params.Age)
	}
	return c.do(ctx, http.MethodGet, "/admin/api/pets/list", q, nil)
}

func (c *Client) PetTypes(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/admin/api/pets/petTypeList", nil, nil)
}

func (c *Client) PetBreeds(ctx context.Context, petTypeID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("petTypeId", petTypeID)
	return c.do(ctx, http.MethodGet, "/admin/api/pets/petBreedList", q, nil)
}

func (c *Client) Personalities(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/admin/api/pets/personalities", nil, nil)
}

func (c *Client) BanPet(ctx context.Context, petID string, isBan bool) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/api/pets/banPet", nil, map[string]any{
		"petId": petID,
		"isBan": isBan,
	})
	return err
}

func (c *Client) DeletePet(ctx context.Context, petID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/api/pets/"+url.PathEscape(petID), nil, nil)
	return err
}

// BlockPetImage sends the photo URL relative to the upstream base, the way the
// API stores it.
func (c *Client) BlockPetImage(ctx context.Context, petID, photoURL string, block bool) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/api/pets/blockimage", nil, map[string]any{
		"photoUrl": RelativePhotoURL(c.base, photoURL),
		"block":    block,
		"petId":    petID,
	})
	return err
}

func (c *Client) DashboardCounts(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/admin/api/dashbord/count", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream api: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{Status: res.StatusCode, Body: strings.TrimSpace(string(payload))}
	}
	if res.StatusCode == http.StatusNoContent || len(payload) == 0 {
		return nil, nil
	}

	return json.RawMessage(payload), nil
}

// RelativePhotoURL strips the upstream base back off an absolute image URL,
// leaving the path form the API expects in moderation requests. URLs outside
// the base pass through untouched.
func RelativePhotoURL(base, raw string) string {
	base = strings.TrimRight(base, "/")
	if base == "" || !strings.HasPrefix(raw, base) {
		return raw
	}
	rest := raw[len(base):]
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return rest
}
