// Package hub is the in-process realtime broker: it owns every live
// websocket connection, tracks which connection listens to which channel and
// fans persisted messages, typing events and notifications out to them.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/exchange-chat-service/internal/config"
	"github.com/s21platform/exchange-chat-service/internal/model"
)

const touchActivityTimeout = 5 * time.Second

type subscription struct {
	client  *Client
	channel string
}

type envelope struct {
	channel string
	data    []byte
}

// Hub routes frames between clients and storage. Channel membership lives in
// a single goroutine (Run), reached only through channels, so bookkeeping
// never blocks on I/O and needs no locks. Storage calls run on the
// connection's read goroutine.
type Hub struct {
	cfg        config.Hub
	repository DBRepo
	guard      AccessGuard
	validator  Validator
	jwt        JWTValidator
	logger     logger_lib.LoggerInterface
	upgrader   websocket.Upgrader

	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	unsubscribe chan subscription
	broadcast   chan envelope

	// owned by Run, never touched from other goroutines
	channels map[string]map[*Client]struct{}
	clients  map[*Client]map[string]struct{}
}

func New(cfg config.Hub, repo DBRepo, guard AccessGuard, vldtr Validator, jwtValidator JWTValidator, logger logger_lib.LoggerInterface) *Hub {
	return &Hub{
		cfg:        cfg,
		repository: repo,
		guard:      guard,
		validator:  vldtr,
		jwt:        jwtValidator,
		logger:     logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		broadcast:   make(chan envelope, 256),
		channels:    make(map[string]map[*Client]struct{}),
		clients:     make(map[*Client]map[string]struct{}),
	}
}

// Run is the registry actor loop. It must be started before ServeWS accepts
// connections and runs until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = make(map[string]struct{})
			h.attach(client, model.UserChannel(client.userID))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case sub := <-h.subscribe:
			if _, ok := h.clients[sub.client]; ok {
				h.attach(sub.client, sub.channel)
			}
		case sub := <-h.unsubscribe:
			h.detach(sub.client, sub.channel)
		case env := <-h.broadcast:
			for client := range h.channels[env.channel] {
				select {
				case client.send <- env.data:
				default:
					// the outbound buffer is full, terminate this
					// session instead of degrading the others
					h.drop(client)
				}
			}
		}
	}
}

// Publish enqueues data for every current subscriber of the channel.
// Delivery is best-effort: marshal failures are logged, slow subscribers are
// dropped, nothing is retried.
func (h *Hub) Publish(channel, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal publish payload: %v", err))
		return
	}

	frame, err := json.Marshal(model.OutboundFrame{
		Channel: channel,
		Event:   event,
		Data:    raw,
	})
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal outbound frame: %v", err))
		return
	}

	h.broadcast <- envelope{channel: channel, data: frame}
}

func (h *Hub) attach(client *Client, channel string) {
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*Client]struct{})
	}
	h.channels[channel][client] = struct{}{}
	h.clients[client][channel] = struct{}{}
}

func (h *Hub) detach(client *Client, channel string) {
	if members, ok := h.channels[channel]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.channels, channel)
		}
	}
	if channels, ok := h.clients[client]; ok {
		delete(channels, channel)
	}
}

// drop removes the client from every channel and closes its send queue.
// In-flight frames to a dropped client are discarded, not retried.
func (h *Hub) drop(client *Client) {
	for channel := range h.clients[client] {
		h.detach(client, channel)
	}
	delete(h.clients, client)
	close(client.send)
}

// handleFrame dispatches one inbound client frame. A malformed or
// unauthorized frame is logged and dropped without affecting the connection:
// realtime senders get either the expected publish or silence.
func (h *Hub) handleFrame(ctx context.Context, client *Client, frame *model.InboundFrame) {
	switch frame.Type {
	case model.FrameTypeMessage:
		h.handleSendMessage(ctx, client, frame.Message)
	case model.FrameTypeTyping:
		h.handleTyping(client, frame.Typing)
	case model.FrameTypeSubscribe:
		h.handleSubscribe(client, frame.Token)
	case model.FrameTypeUnsubscribe:
		if frame.Channel != "" {
			h.unsubscribe <- subscription{client: client, channel: frame.Channel}
		}
	default:
		h.logger.Error(fmt.Sprintf("unknown frame type %q from user %s", frame.Type, client.userID))
	}
}

// handleSendMessage is the core write path: validate, authorize, persist,
// then fan out. Fan-out happens strictly after the append committed.
func (h *Hub) handleSendMessage(ctx context.Context, client *Client, payload *model.SendMessagePayload) {
	if err := h.validator.ValidateSendMessage(payload); err != nil {
		h.logger.Error(fmt.Sprintf("dropped message from user %s: %v", client.userID, err))
		return
	}

	ok, err := h.guard.CanAccess(ctx, client.userID, payload.RoomID)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to check room access: %v", err))
		return
	}
	if !ok {
		// silent drop, room existence is not leaked over the realtime channel
		return
	}

	roomID, err := uuid.Parse(payload.RoomID)
	if err != nil {
		h.logger.Error(fmt.Sprintf("dropped message with malformed room id: %v", err))
		return
	}
	senderID, err := uuid.Parse(client.userID)
	if err != nil {
		h.logger.Error(fmt.Sprintf("dropped message with malformed sender id: %v", err))
		return
	}

	message := &model.Message{
		ID:          uuid.New(),
		RoomID:      roomID,
		SenderID:    senderID,
		SenderLabel: payload.SenderLabel,
		Content:     payload.Content,
	}

	if err = h.repository.SaveMessage(ctx, message); err != nil {
		h.logger.Error(fmt.Sprintf("failed to save message: %v", err))
		return
	}

	h.Publish(model.RoomChannel(payload.RoomID), model.EventTypeMessage, message)
	if payload.ReceiverID != "" && payload.ReceiverID != client.userID {
		h.Publish(model.UserChannel(payload.ReceiverID), model.EventTypeMessage, message)
	}

	go h.touchActivity(payload.RoomID, message.SentAt)
}

func (h *Hub) handleTyping(client *Client, payload *model.TypingPayload) {
	if err := h.validator.ValidateTyping(payload); err != nil {
		return
	}

	h.Publish(model.RoomTypingChannel(payload.RoomID), model.EventTypeTyping, model.TypingEvent{
		RoomID: payload.RoomID,
		UserID: client.userID,
	})
}

// handleSubscribe admits a client to a channel on the strength of a
// subscribe token. The membership check already ran where the token was
// issued, so no storage call happens here.
func (h *Hub) handleSubscribe(client *Client, token string) {
	claims, err := h.jwt.ValidateSubscribeToken(token)
	if err != nil {
		h.logger.Error(fmt.Sprintf("dropped subscribe from user %s: %v", client.userID, err))
		return
	}

	if claims.UserID != client.userID || claims.Channel == "" {
		h.logger.Error(fmt.Sprintf("dropped subscribe with mismatched claims from user %s", client.userID))
		return
	}

	h.subscribe <- subscription{client: client, channel: claims.Channel}
}

// touchActivity is a detached best-effort side effect of a successful send.
// Its failure is observable only through room ordering in list views.
func (h *Hub) touchActivity(roomID string, at time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), touchActivityTimeout)
	defer cancel()

	if err := h.repository.UpdateRoomActivity(ctx, roomID, at); err != nil {
		h.logger.Error(fmt.Sprintf("failed to touch room activity: %v", err))
	}
}
