package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	userssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/users"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/dto"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

type UsersHandler struct {
	service *userssvc.Service
}

func NewUsersHandler(service *userssvc.Service) *UsersHandler {
	return &UsersHandler{service: service}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	q := userQueryFromRequest(r)
	view, err := h.service.List(r.Context(), identity.SID, q)
	if err != nil {
		writeUpstreamError(w, "user")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.UserListResponse{
		Users:      view.Users,
		Pagination: view.Pagination,
	})
}

func (h *UsersHandler) Ban(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeBadRequest(w, "INVALID_REQUEST", "user id is required")
		return
	}

	var req dto.BanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.Ban(r.Context(), identity.SID, userID, req.IsBan); err != nil {
		writeModerationError(w, err, "Ban toggle failed. Verify the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.ActionResponse{OK: true})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeBadRequest(w, "INVALID_REQUEST", "user id is required")
		return
	}

	pg, err := h.service.Delete(r.Context(), identity.SID, userID)
	if err != nil {
		writeModerationError(w, err, "Delete failed. Update the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true, Pagination: pg})
}

func (h *UsersHandler) BlockPhoto(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeBadRequest(w, "INVALID_REQUEST", "user id is required")
		return
	}

	var req dto.BlockPhotoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.BlockPhoto(r.Context(), identity.SID, userID, req.Block); err != nil {
		writeModerationError(w, err, "Block toggle failed. Verify the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.ActionResponse{OK: true})
}

// userQueryFromRequest folds the request params into the query through the
// setters so the page-reset invariants hold no matter the parameter order.
func userQueryFromRequest(r *http.Request) listing.UserQuery {
	q := listing.NewUserQuery()
	params := r.URL.Query()

	if v := params.Get("status"); v != "" {
		q.SetStatus(v)
	}
	if n, err := strconv.Atoi(params.Get("limit")); err == nil {
		q.SetLimit(n)
	}
	if n, err := strconv.Atoi(params.Get("page")); err == nil {
		q.SetPage(n)
	}
	return q
}
