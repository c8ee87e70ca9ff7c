package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// dispatcher handles frames arriving from a client.
type dispatcher interface {
	handleClientMessage(ctx context.Context, c *Client, msg ClientMessage)
}

type clientOptions struct {
	writeTimeout time.Duration
	pongTimeout  time.Duration
	maxMessage   int64
	sendBuffer   int
}

// Client wraps one websocket connection. All writes go through the send
// channel so a single goroutine owns the socket.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	opts clientOptions

	userID uuid.UUID
	role   string

	send      chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

func newClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, role string, opts clientOptions) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		opts:   opts,
		userID: userID,
		role:   role,
		send:   make(chan []byte, opts.sendBuffer),
		done:   make(chan struct{}),
	}
}

func (c *Client) UserID() uuid.UUID { return c.userID }
func (c *Client) Role() string      { return c.role }

// Send marshals and queues an event for this client only.
func (c *Client) Send(ev ServerEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return c.trySend(data)
}

func (c *Client) trySend(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// enqueue is the hub-side best-effort variant of Send.
func (c *Client) enqueue(data []byte) {
	_ = c.trySend(data)
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// readPump reads frames until the socket dies, dispatching each one.
func (c *Client) readPump(ctx context.Context, d dispatcher) {
	defer func() {
		c.hub.Unregister(c)
		c.close()
	}()

	c.conn.SetReadLimit(c.opts.maxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.pongTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read failed", "user_id", c.userID, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = c.Send(NewError("malformed message"))
			continue
		}
		d.handleClientMessage(ctx, c, msg)
	}
}

// writePump is the only writer on the socket. Pings keep the read deadline
// on the other side alive.
func (c *Client) writePump() {
	pingInterval := c.opts.pongTimeout * 9 / 10
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
