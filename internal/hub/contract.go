//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package hub

import (
	"context"
	"time"

	"github.com/s21platform/exchange-chat-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	UpdateRoomActivity(ctx context.Context, roomID string, at time.Time) error
}

type AccessGuard interface {
	CanAccess(ctx context.Context, userID, roomID string) (bool, error)
}

type Validator interface {
	ValidateSendMessage(payload *model.SendMessagePayload) error
	ValidateTyping(payload *model.TypingPayload) error
}

type JWTValidator interface {
	ValidateConnectToken(tokenString string) (*model.HubConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.HubSubscribeClaims, error)
}
