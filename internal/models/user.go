package models

import "time"

// UserID is the opaque integer identity of a registered player.
type UserID int64

// User represents a user record in the database.
type User struct {
	ID           UserID    `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Display username as entered at registration
	UsernameNorm string    `json:"-" db:"username_norm"`       // Canonical lookup key, unique
	PasswordHash string    `json:"-" db:"password_hash"`       // Argon2id hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
