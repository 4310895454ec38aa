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

// SavePersister defines the interface that the save-persisting service must implement.
type SavePersister interface {
	Persist(ctx context.Context, userID models.UserID, payload any) (*services.SaveResult, error)
}

// NewSaveHandler returns an HTTP handler that persists the player's save.
// The body is accepted as arbitrary JSON; sanitization happens downstream,
// so only parse failures are rejected.
// @Summary Persist save
// @Description Sanitize and persist the save document, bumping the revision
// @Tags save
// @Accept json
// @Produce json
// @Param save body object true "Raw save payload"
// @Success 200 {object} handlers.SaveEnvelope "Persisted save"
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON payload"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /api/save [post]
func NewSaveHandler(svc SavePersister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		su := middlewares.GetSessionUserFromContext(r.Context())
		if su == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Authentication required",
			})
			return
		}

		var payload any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid JSON payload",
			})
			return
		}

		result, err := svc.Persist(r.Context(), su.User.ID, payload)
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
