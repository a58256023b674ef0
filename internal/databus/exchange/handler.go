package exchange

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/exchange-chat-service/internal/config"
)

// EventExchangeAccepted is pushed to both participants once their room exists.
const EventExchangeAccepted = "exchange_accepted"

// ExchangeAcceptedMessage mirrors the payload exchange-service emits when a
// skill exchange request is accepted.
type ExchangeAcceptedMessage struct {
	RequestUUID string `json:"request_uuid"`
	AuthorUUID  string `json:"author_uuid"`
	PartnerUUID string `json:"partner_uuid"`
}

type Handler struct {
	repository DBRepo
	relay      NotificationRelay
}

func New(repo DBRepo, relay NotificationRelay) *Handler {
	return &Handler{
		repository: repo,
		relay:      relay,
	}
}

// Handler provisions the chat room for an accepted exchange and notifies both
// participants. Creation is idempotent, so replayed events are harmless.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ExchangeAcceptedHandler")

	var msg ExchangeAcceptedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal message: %v", err))
		return nil
	}

	if msg.AuthorUUID == "" || msg.PartnerUUID == "" {
		logger.Error(fmt.Sprintf("skipped event with missing participants: %q", string(in)))
		return nil
	}

	var exchangeRequestID *string
	if msg.RequestUUID != "" {
		exchangeRequestID = &msg.RequestUUID
	}

	room, err := h.repository.CreateOrGetRoom(ctx, msg.AuthorUUID, msg.PartnerUUID, exchangeRequestID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create room for exchange %s: %v", msg.RequestUUID, err))
		return nil
	}

	payload, err := json.Marshal(struct {
		RoomID          string `json:"room_id"`
		ExchangeRequest string `json:"exchange_request_id,omitempty"`
	}{
		RoomID:          room.ID.String(),
		ExchangeRequest: msg.RequestUUID,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to marshal notification payload: %v", err))
		return nil
	}

	for _, userID := range []string{msg.AuthorUUID, msg.PartnerUUID} {
		if err := h.relay.Push(userID, EventExchangeAccepted, payload); err != nil {
			logger.Error(fmt.Sprintf("failed to push notification to %s: %v", userID, err))
		}
	}
	return nil
}
