//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package exchange

import (
	"context"
	"encoding/json"

	"github.com/s21platform/exchange-chat-service/internal/model"
)

type DBRepo interface {
	CreateOrGetRoom(ctx context.Context, userA, userB string, exchangeRequestID *string) (*model.Room, error)
}

type NotificationRelay interface {
	Push(userID, eventType string, payload json.RawMessage) error
}
