package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, id models.SessionID) error
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Always true
	OK bool `json:"ok"`
}

// NewLogoutHandler returns an HTTP handler for logout. Logging out without a
// session, or with one that is already gone, still succeeds.
// @Summary Player logout
// @Description Revoke the current session and clear its cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(security.SessionCookie); err == nil && cookie.Value != "" {
			if err := svc.Logout(r.Context(), models.SessionID(cookie.Value)); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
				return
			}
		}

		http.SetCookie(w, security.ExpiredSessionCookie(secureCookies))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{OK: true})
	}
}
