package model

import "strings"

const (
	roomChannelPrefix = "room/"
	userChannelPrefix = "user/"
	typingSuffix      = "/typing"
)

// RoomChannel is the fan-out destination for persisted messages of a room.
func RoomChannel(roomID string) string {
	return roomChannelPrefix + roomID
}

// RoomTypingChannel carries ephemeral typing events for a room.
func RoomTypingChannel(roomID string) string {
	return roomChannelPrefix + roomID + typingSuffix
}

// UserChannel is the personal destination of a single user. Every connection
// is attached to its own user channel on connect.
func UserChannel(userID string) string {
	return userChannelPrefix + userID
}

// ParseRoomChannel extracts the room id from a room-scoped channel name,
// accepting both "room/{id}" and "room/{id}/typing". Returns false for user
// channels and malformed names.
func ParseRoomChannel(channel string) (string, bool) {
	if !strings.HasPrefix(channel, roomChannelPrefix) {
		return "", false
	}

	roomID := strings.TrimPrefix(channel, roomChannelPrefix)
	roomID = strings.TrimSuffix(roomID, typingSuffix)

	if roomID == "" || strings.Contains(roomID, "/") {
		return "", false
	}

	return roomID, true
}
