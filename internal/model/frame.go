package model

import "encoding/json"

const (
	FrameTypeMessage     = "message"
	FrameTypeTyping      = "typing"
	FrameTypeSubscribe   = "subscribe"
	FrameTypeUnsubscribe = "unsubscribe"

	EventTypeMessage = "message"
	EventTypeTyping  = "typing"
)

// InboundFrame is a single client-to-server websocket frame. Type selects the
// populated branch.
type InboundFrame struct {
	Type    string              `json:"type"`
	Channel string              `json:"channel,omitempty"`
	Token   string              `json:"token,omitempty"`
	Message *SendMessagePayload `json:"message,omitempty"`
	Typing  *TypingPayload      `json:"typing,omitempty"`
}

type SendMessagePayload struct {
	RoomID      string `json:"room_id"`
	ReceiverID  string `json:"receiver_id,omitempty"`
	SenderLabel string `json:"sender_label,omitempty"`
	Content     string `json:"content"`
}

type TypingPayload struct {
	RoomID string `json:"room_id"`
}

// OutboundFrame wraps everything the hub publishes to subscribers: persisted
// messages, typing events and collaborator notifications.
type OutboundFrame struct {
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Data    json.RawMessage `json:"data"`
}

// TypingEvent is the payload relayed on a room's typing channel. Never
// persisted.
type TypingEvent struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}
