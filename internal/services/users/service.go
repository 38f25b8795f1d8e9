// Package users serves the user moderation view: fetch a page from the
// upstream API, normalize it, layer the session's overrides on top and keep
// the result cached per session so moderation actions can mutate it in place.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

type API interface {
	BaseURL() string
	ListUsers(ctx context.Context, page, limit int) (json.RawMessage, error)
}

type Service struct {
	api        API
	reconciler *moderation.Reconciler
	overrides  moderation.OverrideStore
	guard      *listing.FetchGuard

	mu    sync.Mutex
	views map[string]*view
}

// view is one session's most recent fetch. Moderation mutates it in place;
// the next List replaces it wholesale.
type view struct {
	mu         sync.Mutex
	users      []normalize.User
	pagination listing.Pagination
}

// View is the filtered page handed to the transport layer.
type View struct {
	Users      []normalize.User
	Pagination listing.Pagination
}

func NewService(api API, reconciler *moderation.Reconciler, overrides moderation.OverrideStore) *Service {
	return &Service{
		api:        api,
		reconciler: reconciler,
		overrides:  overrides,
		guard:      listing.NewFetchGuard(),
		views:      make(map[string]*view),
	}
}

func (s *Service) List(ctx context.Context, sid string, q listing.UserQuery) (View, error) {
	gen := s.guard.Begin(sid)

	payload, err := s.api.ListUsers(ctx, q.Page, q.Limit)
	if err != nil {
		return View{}, fmt.Errorf("list users: %w", err)
	}

	users := normalize.Users(payload, s.api.BaseURL())

	photos, err := s.overrides.PhotoOverrides(ctx, sid)
	if err != nil {
		return View{}, fmt.Errorf("load photo overrides: %w", err)
	}
	images, err := s.overrides.ImageOverrides(ctx, sid)
	if err != nil {
		return View{}, fmt.Errorf("load image overrides: %w", err)
	}
	moderation.ApplyUserOverrides(users, photos, images)

	// hasMore reads the raw page size, before the client-side status filter
	// narrows it.
	var pg listing.Pagination
	pg.Apply(q.Page, q.Limit, len(users), normalize.Total(payload, len(users)))

	// A fetch that was superseded while in flight still answers its own
	// request, but must not overwrite the fresher cached view.
	v := s.view(sid)
	v.mu.Lock()
	if !s.guard.Stale(sid, gen) {
		v.users = users
		v.pagination = pg
	}
	v.mu.Unlock()

	filtered := listing.FilterUsers(users, q)
	return View{
		Users:      append([]normalize.User(nil), filtered...),
		Pagination: pg,
	}, nil
}

// Ban toggles the ban flag for a user in the session's current page.
func (s *Service) Ban(ctx context.Context, sid, userID string, isBan bool) error {
	v := s.view(sid)
	return s.reconciler.BanUser(ctx, &v.mu, &v.users, userID, isBan)
}

// Delete removes the user and returns the adjusted pagination so the caller
// can show the new total without refetching.
func (s *Service) Delete(ctx context.Context, sid, userID string) (listing.Pagination, error) {
	v := s.view(sid)
	if err := s.reconciler.DeleteUser(ctx, &v.mu, &v.users, &v.pagination, userID); err != nil {
		return listing.Pagination{}, err
	}
	v.mu.Lock()
	pg := v.pagination
	v.mu.Unlock()
	return pg, nil
}

func (s *Service) BlockPhoto(ctx context.Context, sid, userID string, block bool) error {
	v := s.view(sid)
	return s.reconciler.BlockUserPhoto(ctx, s.overrides, sid, &v.mu, &v.users, userID, block)
}

// CachedSessions lists the sessions that currently hold a cached view.
func (s *Service) CachedSessions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sids := make([]string, 0, len(s.views))
	for sid := range s.views {
		sids = append(sids, sid)
	}
	return sids
}

// DropView discards a session's cached view, for sessions that expired.
func (s *Service) DropView(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, sid)
}

func (s *Service) view(sid string) *view {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[sid]
	if !ok {
		v = &view{}
		s.views[sid] = v
	}
	return v
}
