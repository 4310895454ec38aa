package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/middlewares"
)

// MeResponse reports the current user (or null) plus the CSRF token the
// client must echo back on unsafe requests
// swagger:model MeResponse
type MeResponse struct {
	// Current user, null when not logged in
	User *UserSummary `json:"user"`

	// CSRF token for this browser
	CsrfToken string `json:"csrfToken"`
}

// NewMeHandler returns an HTTP handler for the current-user probe.
// @Summary Current user
// @Description Report the logged-in user, or null, plus the CSRF token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current state"
// @Router /api/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := MeResponse{
			CsrfToken: middlewares.GetCsrfTokenFromContext(r.Context()),
		}

		if su := middlewares.GetSessionUserFromContext(r.Context()); su != nil {
			summary := newUserSummary(&su.User)
			resp.User = &summary
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
