package model

import (
	"encoding/json"
	"time"
)

// Notification is an opaque typed event pushed to a user's personal channel.
// The service routes it without interpreting the payload.
type Notification struct {
	Type    string          `json:"type"`
	UserID  string          `json:"user_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}
