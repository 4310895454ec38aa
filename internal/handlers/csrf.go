package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/middlewares"
)

// CsrfResponse carries the token minted for this browser
// swagger:model CsrfResponse
type CsrfResponse struct {
	// CSRF token
	Token string `json:"token"`
}

// NewCsrfHandler returns an HTTP handler that hands the CSRF token to clients
// that cannot, or prefer not to, read it from the cookie.
// @Summary CSRF token
// @Description Return the CSRF token for this browser
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CsrfResponse "Token"
// @Router /api/csrf [get]
func NewCsrfHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CsrfResponse{
			Token: middlewares.GetCsrfTokenFromContext(r.Context()),
		})
	}
}
