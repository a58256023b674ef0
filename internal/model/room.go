package model

import (
	"time"

	"github.com/google/uuid"
)

// Room is a durable channel pairing exactly two users, optionally linked to
// the exchange request that spawned it. Participants are stored in canonical
// order, see CanonicalPair.
type Room struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	ParticipantA      uuid.UUID  `db:"participant_a" json:"participant_a"`
	ParticipantB      uuid.UUID  `db:"participant_b" json:"participant_b"`
	ExchangeRequestID *uuid.UUID `db:"exchange_request_id" json:"exchange_request_id,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	LastActivityAt    time.Time  `db:"last_activity_at" json:"last_activity_at"`
}

// HasParticipant reports whether userID is one of the two canonical
// participants.
func (r *Room) HasParticipant(userID string) bool {
	return r.ParticipantA.String() == userID || r.ParticipantB.String() == userID
}

type RoomPreviewList []RoomPreview

type RoomPreview struct {
	RoomID             string     `db:"room_id"`
	CompanionID        string     `db:"companion_id"`
	ExchangeRequestID  *string    `db:"exchange_request_id"`
	LastActivityAt     time.Time  `db:"last_activity_at"`
	LastMessageContent *string    `db:"last_message_content"`
	LastMessageSentAt  *time.Time `db:"last_message_sent_at"`
}

// CanonicalPair places two user ids into a fixed, order-independent sequence.
// Every room lookup and uniqueness check goes through this single ordering
// point so that (A,B) and (B,A) collide on the same storage key.
func CanonicalPair(userA, userB string) (string, string) {
	if userB < userA {
		return userB, userA
	}
	return userA, userB
}
