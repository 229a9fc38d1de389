package models

import "time"

// HistoryEntry is the model for the 'history' table. The log is append-only:
// no update or delete is exposed anywhere.
type HistoryEntry struct {
	ID        string    `json:"id" db:"id"`
	UserEmail *string   `json:"user_email" db:"user_email"`
	UserRole  *string   `json:"user_role" db:"user_role"`
	Action    *string   `json:"action" db:"action"`
	Details   *string   `json:"details" db:"details"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// CreateHistoryInput defines the JSON input for appending a history entry.
type CreateHistoryInput struct {
	UserEmail string `json:"userEmail"`
	UserRole  string `json:"userRole"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}
