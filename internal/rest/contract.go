//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	api "github.com/s21platform/exchange-chat-service/internal/generated"
	"github.com/s21platform/exchange-chat-service/internal/model"
)

type DBRepo interface {
	CreateOrGetRoom(ctx context.Context, userA, userB string, exchangeRequestID *string) (*model.Room, error)
	GetRoom(ctx context.Context, roomID string) (*model.Room, error)
	GetRoomsForUser(ctx context.Context, userID string) (*model.RoomPreviewList, error)
	GetRoomMessages(ctx context.Context, roomID string) (*model.MessageList, error)
	GetRoomMessagesAfter(ctx context.Context, roomID string, after time.Time) (*model.MessageList, error)
}

type AccessGuard interface {
	CanAccess(ctx context.Context, userID, roomID string) (bool, error)
}

type Validator interface {
	ValidateCreateRoom(req *api.CreateRoomRequest, creatorID string) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, channel string) (string, int64, error)
}
