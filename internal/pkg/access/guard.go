package access

import (
	"context"
	"fmt"
)

// Guard answers one question: does this user have standing to touch this
// room. No side effects, a pure predicate over directory state. Unknown rooms
// propagate model.ErrRoomNotFound so callers can tell "no such room" from
// "not your room".
type Guard struct {
	rooms RoomProvider
}

func New(rooms RoomProvider) *Guard {
	return &Guard{rooms: rooms}
}

func (g *Guard) CanAccess(ctx context.Context, userID, roomID string) (bool, error) {
	room, err := g.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve room: %w", err)
	}

	return room.HasParticipant(userID), nil
}
