package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, *models.Session, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: DinoMaster
	Username string `json:"username"`

	// Password
	// required: true
	// default: secretpass1
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Player login
// @Description Authenticate a player and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.UserSummary "Authenticated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 429 {object} handlers.ErrorResponse "Too many attempts"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid credentials",
			})
			return
		}

		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid credentials",
			})
			return
		}

		user, session, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Invalid username or password",
				})
			case errors.Is(err, services.ErrTooManyAttempts):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Too many attempts",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		http.SetCookie(w, security.SessionCookieFor(string(session.ID), session.ExpiresAt, secureCookies))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserSummary(user))
	}
}
