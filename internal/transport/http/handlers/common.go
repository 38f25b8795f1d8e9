package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
	authsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
	httperrors "github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

// writeUpstreamError maps a failed list/overview fetch: the upstream being
// down is a gateway problem, not ours.
func writeUpstreamError(w http.ResponseWriter, resource string) {
	httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "Unable to reach " + resource + " API.",
	})
}

// writeModerationError maps a failed moderation action. A second action for
// the same entity while one runs is a conflict; everything else surfaces as a
// gateway failure naming the attempted action.
func writeModerationError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, moderation.ErrActionInFlight) {
		httperrors.Write(w, http.StatusConflict, httperrors.APIError{
			Code:    "ACTION_IN_FLIGHT",
			Message: "Another action for this record is still running.",
		})
		return
	}
	httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
		Code:    "MODERATION_FAILED",
		Message: message,
	})
}

func identityOrUnauthorized(w http.ResponseWriter, r *http.Request) (authsvc.Identity, bool) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
	}
	return identity, ok
}
