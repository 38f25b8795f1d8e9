package handlers

import (
	"errors"
	"net/http"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
	catalogsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/catalog"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/dto"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

type CatalogHandler struct {
	service *catalogsvc.Service
}

func NewCatalogHandler(service *catalogsvc.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Types(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityOrUnauthorized(w, r); !ok {
		return
	}

	options, err := h.service.Types(r.Context())
	if err != nil {
		writeUpstreamError(w, "types")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.OptionListResponse{Options: options})
}

func (h *CatalogHandler) Breeds(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	typeID := r.URL.Query().Get("petTypeId")
	options, err := h.service.Breeds(r.Context(), identity.SID, typeID)
	if err != nil {
		// A superseded fetch is not an error the client needs to show; the
		// newer request carries the fresh options.
		if errors.Is(err, catalogsvc.ErrStaleFetch) {
			httperrors.Write(w, http.StatusOK, dto.OptionListResponse{Options: []normalize.Option{}})
			return
		}
		writeUpstreamError(w, "breeds")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.OptionListResponse{Options: options})
}

func (h *CatalogHandler) Personalities(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityOrUnauthorized(w, r); !ok {
		return
	}

	options, err := h.service.Personalities(r.Context())
	if err != nil {
		writeUpstreamError(w, "personalities")
		return
	}
	httperrors.Write(w, http.StatusOK, dto.OptionListResponse{Options: options})
}
