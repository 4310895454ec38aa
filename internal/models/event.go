package models

// AuthEvent is published to Kafka after a successful auth operation.
type AuthEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the operation
	UserID    string `json:"user_id"`   // Affected user
	Operation string `json:"operation"` // "register", "login" or "logout"
}
