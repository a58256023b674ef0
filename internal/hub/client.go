package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/s21platform/exchange-chat-service/internal/model"
)

// Client is one live websocket session. It moves through
// connecting -> open -> closing -> closed: ServeWS upgrades and registers it,
// the pumps keep it open, and either pump failing tears the whole session
// down and releases its subscriptions.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
}

// ServeWS authenticates the connect token, upgrades the connection and
// starts the session pumps. The client is attached to its personal user
// channel immediately, room channels require subscribe frames.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	claims, err := h.jwt.ValidateConnectToken(r.URL.Query().Get("token"))
	if err != nil {
		h.logger.Error(fmt.Sprintf("rejected ws connection: %v", err))
		http.Error(w, "invalid connect token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.cfg.SendBuffer),
		userID: claims.Subject,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump reads inbound frames until the connection dies. A frame that
// fails to decode is logged and skipped, it never terminates the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	ctx := context.Background()
	pongWait := c.hub.cfg.HeartbeatInterval * 2

	c.conn.SetReadLimit(c.hub.cfg.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Error(fmt.Sprintf("ws read error for user %s: %v", c.userID, err))
			}
			return
		}

		var frame model.InboundFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			c.hub.logger.Error(fmt.Sprintf("dropped undecodable frame from user %s: %v", c.userID, err))
			continue
		}

		c.hub.handleFrame(ctx, c, &frame)
	}
}

// writePump drains the send queue and keeps the heartbeat going. It owns all
// writes to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.hub.cfg.HeartbeatInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
