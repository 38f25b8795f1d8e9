package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	petssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/pets"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/dto"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

type PetsHandler struct {
	service *petssvc.Service
}

func NewPetsHandler(service *petssvc.Service) *PetsHandler {
	return &PetsHandler{service: service}
}

func (h *PetsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	q := petQueryFromRequest(r)
	view, err := h.service.List(r.Context(), identity.SID, q)
	if err != nil {
		writeUpstreamError(w, "pet")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.PetListResponse{
		Pets:       view.Pets,
		Pagination: view.Pagination,
	})
}

func (h *PetsHandler) Ban(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	petID := chi.URLParam(r, "id")
	if petID == "" {
		writeBadRequest(w, "INVALID_REQUEST", "pet id is required")
		return
	}

	var req dto.BanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.Ban(r.Context(), identity.SID, petID, req.IsBan); err != nil {
		writeModerationError(w, err, "Ban toggle failed. Verify the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.ActionResponse{OK: true})
}

func (h *PetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	petID := chi.URLParam(r, "id")
	if petID == "" {
		writeBadRequest(w, "INVALID_REQUEST", "pet id is required")
		return
	}

	pg, err := h.service.Delete(r.Context(), identity.SID, petID)
	if err != nil {
		writeModerationError(w, err, "Delete failed. Update the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true, Pagination: pg})
}

func (h *PetsHandler) BlockImage(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req dto.BlockImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	if req.PhotoURL == "" {
		writeBadRequest(w, "INVALID_REQUEST", "photoUrl is required")
		return
	}

	if err := h.service.BlockImage(r.Context(), identity.SID, req.PetID, req.PhotoURL, req.Block); err != nil {
		writeModerationError(w, err, "Block toggle failed. Verify the API URL or try again.")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.ActionResponse{OK: true})
}

func petQueryFromRequest(r *http.Request) listing.PetQuery {
	q := listing.NewPetQuery()
	params := r.URL.Query()

	if v := params.Get("search"); v != "" {
		q.SetSearch(v)
	}
	if v := params.Get("status"); v != "" {
		q.SetStatus(v)
	}
	if v := params.Get("typeId"); v != "" {
		q.SetType(v)
	}
	if v := params.Get("breedId"); v != "" {
		q.SetBreed(v)
	}
	if v := params.Get("personality"); v != "" {
		q.SetPersonality(v)
	}
	if v := params.Get("age"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.SetAge(&n)
		}
	}
	if n, err := strconv.Atoi(params.Get("limit")); err == nil {
		q.SetLimit(n)
	}
	// Page goes last so the filter setters cannot reset an explicit page.
	if n, err := strconv.Atoi(params.Get("page")); err == nil {
		q.SetPage(n)
	}
	return q
}
