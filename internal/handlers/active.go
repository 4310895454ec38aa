package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/middlewares"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
)

// DinoSelector defines the interface that the active-dino service must implement.
type DinoSelector interface {
	SetActiveDino(ctx context.Context, userID models.UserID, slug string) (*services.SaveResult, error)
}

// ActiveDinoRequest represents the JSON body for picking an active dino
// swagger:model ActiveDinoRequest
type ActiveDinoRequest struct {
	// Catalog slug
	// required: true
	// default: ember
	Slug string `json:"slug"`
}

// NewActiveDinoHandler returns an HTTP handler that sets the active dino.
// @Summary Set active dino
// @Description Validate the slug against the catalog and persist it in the save
// @Tags save
// @Accept json
// @Produce json
// @Param activeDinoRequest body handlers.ActiveDinoRequest true "Active Dino Request"
// @Success 200 {object} handlers.SaveEnvelope "Updated save"
// @Failure 400 {object} handlers.ErrorResponse "Unknown dino"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /api/active [post]
func NewActiveDinoHandler(svc DinoSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		su := middlewares.GetSessionUserFromContext(r.Context())
		if su == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Authentication required",
			})
			return
		}

		var req ActiveDinoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid JSON payload",
			})
			return
		}

		result, err := svc.SetActiveDino(r.Context(), su.User.ID, req.Slug)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownDino):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Unknown dino",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newSaveEnvelope(result))
	}
}
