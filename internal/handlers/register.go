package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.User, *models.Session, error)
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: DinoMaster
	Username string `json:"username"`

	// Password
	// required: true
	// default: secretpass1
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new player
// @Description Create an account and open a session for it
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.UserSummary "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Failure 429 {object} handlers.ErrorResponse "Too many attempts"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer, secureCookies bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid credentials",
			})
			return
		}

		if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < minUsernameLength ||
			len(req.Password) < minPasswordLength {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid credentials",
			})
			return
		}

		user, session, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Username already taken",
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newUserSummary(user))
	}
}
