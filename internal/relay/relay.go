// Package relay pushes typed events to a user's personal channel on behalf
// of collaborators outside the chat core (match engine, exchange requests).
package relay

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/s21platform/exchange-chat-service/internal/model"
)

type Relay struct {
	hub Publisher
}

func New(hub Publisher) *Relay {
	return &Relay{hub: hub}
}

// Push is fire-and-forget: no persistence, no delivery guarantee, no
// ordering relative to other events for the same user. The payload is routed
// opaquely.
func (r *Relay) Push(userID, eventType string, payload json.RawMessage) error {
	if userID == "" {
		return fmt.Errorf("empty user id")
	}
	if eventType == "" {
		return fmt.Errorf("empty event type")
	}

	r.hub.Publish(model.UserChannel(userID), eventType, model.Notification{
		Type:    eventType,
		UserID:  userID,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	})

	return nil
}
