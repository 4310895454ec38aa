package handlers

import (
	"time"

	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/pet"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
)

// ErrorResponse represents a generic error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// UserSummary is the public projection of a user account
// swagger:model UserSummary
type UserSummary struct {
	// User ID
	ID int64 `json:"id"`

	// Display username as entered at registration
	Username string `json:"username"`

	// Account creation time
	CreatedAt time.Time `json:"createdAt"`
}

func newUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:        int64(user.ID),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// SaveEnvelope wraps a save document with its revision metadata
// swagger:model SaveEnvelope
type SaveEnvelope struct {
	// Sanitized save document
	Save pet.Save `json:"save"`

	// Monotonic revision counter
	Revision int64 `json:"revision"`

	// Last persist time
	UpdatedAt time.Time `json:"updatedAt"`
}

func newSaveEnvelope(result *services.SaveResult) SaveEnvelope {
	return SaveEnvelope{
		Save:      result.Payload,
		Revision:  int64(result.Revision),
		UpdatedAt: result.UpdatedAt,
	}
}
