package match

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/exchange-chat-service/internal/config"
)

// EventMatchFound is pushed to a user when matching finds them a partner.
const EventMatchFound = "match_found"

// MatchFoundMessage mirrors the payload matching-service emits.
type MatchFoundMessage struct {
	UserUUID    string `json:"user_uuid"`
	PartnerUUID string `json:"partner_uuid"`
	Skill       string `json:"skill"`
}

type Handler struct {
	relay NotificationRelay
}

func New(relay NotificationRelay) *Handler {
	return &Handler{relay: relay}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MatchFoundHandler")

	var msg MatchFoundMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal message: %v", err))
		return nil
	}

	if msg.UserUUID == "" {
		logger.Error(fmt.Sprintf("skipped event with no user: %q", string(in)))
		return nil
	}

	payload, err := json.Marshal(struct {
		PartnerUUID string `json:"partner_uuid"`
		Skill       string `json:"skill,omitempty"`
	}{
		PartnerUUID: msg.PartnerUUID,
		Skill:       msg.Skill,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to marshal notification payload: %v", err))
		return nil
	}

	if err := h.relay.Push(msg.UserUUID, EventMatchFound, payload); err != nil {
		logger.Error(fmt.Sprintf("failed to push notification to %s: %v", msg.UserUUID, err))
	}
	return nil
}
