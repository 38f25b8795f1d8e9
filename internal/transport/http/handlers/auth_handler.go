package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/pkg/validate"
	authsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/dto"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

type AuthHandler struct {
	service *authsvc.Service
}

func NewAuthHandler(service *authsvc.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	if !validate.Email(req.Email) || !validate.Required(req.Password) {
		writeBadRequest(w, "INVALID_REQUEST", "email and password are required")
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	expiresIn := int64(time.Until(res.ExpiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	httperrors.Write(w, http.StatusOK, dto.LoginResponse{
		AccessToken:  res.AccessToken,
		ExpiresInSec: expiresIn,
		Email:        res.Email,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	if err := h.service.Logout(r.Context(), identity.SID); err != nil {
		handleAuthError(w, err)
		return
	}
	httperrors.Write(w, http.StatusOK, dto.LogoutResponse{OK: true})
}

func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authsvc.ErrInvalidInput):
		writeBadRequest(w, "INVALID_REQUEST", "email and password are required")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		writeUnauthorized(w, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, authsvc.ErrUnauthorized):
		writeUnauthorized(w, "UNAUTHORIZED", "authentication failed")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}
