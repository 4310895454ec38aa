package models

import "time"

// SessionID is the opaque unguessable token issued at login or registration.
type SessionID string

// Session represents a session record in the database.
type Session struct {
	ID        SessionID `json:"id" db:"id"`                 // Opaque token, primary key
	UserID    UserID    `json:"user_id" db:"user_id"`       // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Expiry, checked lazily on resolve
}

// SessionUser pairs a resolved session with its owning user.
type SessionUser struct {
	User    User
	Session Session
}
