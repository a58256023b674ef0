package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID          uuid.UUID `db:"id" json:"id"`
	RoomID      uuid.UUID `db:"room_id" json:"room_id"`
	SenderID    uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderLabel string    `db:"sender_label" json:"sender_label"`
	Content     string    `db:"content" json:"content"`
	SentAt      time.Time `db:"sent_at" json:"sent_at"`
	// Seq is assigned by the store on insert and strictly increases, so
	// (SentAt, Seq) orders a room's history deterministically even when two
	// messages land in the same millisecond.
	Seq int64 `db:"seq" json:"seq"`
}
