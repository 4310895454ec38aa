package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/middlewares"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
)

// SaveLoader defines the interface that the save-loading service must implement.
type SaveLoader interface {
	Load(ctx context.Context, userID models.UserID) (*services.SaveResult, error)
}

// NewLoadHandler returns an HTTP handler that loads the player's save.
// @Summary Load save
// @Description Return the player's save document with revision metadata
// @Tags save
// @Produce json
// @Success 200 {object} handlers.SaveEnvelope "Current save"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /api/load [get]
func NewLoadHandler(svc SaveLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		su := middlewares.GetSessionUserFromContext(r.Context())
		if su == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Authentication required",
			})
			return
		}

		result, err := svc.Load(r.Context(), su.User.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newSaveEnvelope(result))
	}
}
