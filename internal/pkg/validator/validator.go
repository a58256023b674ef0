package validator

import (
	"fmt"
	"strings"

	api "github.com/s21platform/exchange-chat-service/internal/generated"
	"github.com/s21platform/exchange-chat-service/internal/model"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateRoom(req *api.CreateRoomRequest, creatorID string) error {
	if strings.TrimSpace(req.CompanionId) == "" {
		return fmt.Errorf("companion_id is required")
	}

	if req.CompanionId == creatorID {
		return fmt.Errorf("cannot create a room with yourself")
	}

	return nil
}

func (v *Validator) ValidateSendMessage(payload *model.SendMessagePayload) error {
	if payload == nil {
		return fmt.Errorf("message payload is required")
	}

	if strings.TrimSpace(payload.RoomID) == "" {
		return fmt.Errorf("room_id is required")
	}

	if strings.TrimSpace(payload.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(payload.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateTyping(payload *model.TypingPayload) error {
	if payload == nil || strings.TrimSpace(payload.RoomID) == "" {
		return fmt.Errorf("room_id is required")
	}

	return nil
}
