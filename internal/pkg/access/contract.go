//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package access

import (
	"context"

	"github.com/s21platform/exchange-chat-service/internal/model"
)

type RoomProvider interface {
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
}
