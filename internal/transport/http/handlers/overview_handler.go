package handlers

import (
	"net/http"

	overviewsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/overview"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

type OverviewHandler struct {
	service *overviewsvc.Service
}

func NewOverviewHandler(service *overviewsvc.Service) *OverviewHandler {
	return &OverviewHandler{service: service}
}

func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityOrUnauthorized(w, r); !ok {
		return
	}

	overview, err := h.service.Overview(r.Context())
	if err != nil {
		writeUpstreamError(w, "dashboard")
		return
	}
	httperrors.Write(w, http.StatusOK, overview)
}
