package models

import "time"

// Revision is the monotonically increasing counter version-stamping each persisted save.
type Revision int64

// SaveRecord is the persisted envelope around a user's serialized save document.
// Exactly one record exists per user; it is overwritten, never appended.
type SaveRecord struct {
	UserID    UserID    `json:"user_id" db:"user_id"`       // Primary key, references users
	Revision  Revision  `json:"revision" db:"revision"`     // Incremented by exactly 1 on every persist
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last persist
	SaveJSON  string    `json:"save_json" db:"save_json"`   // Sanitized save document
}
