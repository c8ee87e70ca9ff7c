// Package ws is the realtime side of the app. It runs on its own listener
// next to the REST server, authenticates connections with the same PASETO
// tokens, and fans NATS events out to user and chat groups.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/mindchat/mindchat_backend/config"
	"github.com/mindchat/mindchat_backend/internal/events"
	"github.com/mindchat/mindchat_backend/internal/service/chat"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
)

type Server struct {
	cfg    config.RealtimeConfig
	hub    *Hub
	chats  chat.Service
	users  directory.Service
	tokens *pasetotoken.Manager
	rdb    *redis.Client
	nc     *nats.Conn

	upgrader websocket.Upgrader
	srv      *http.Server
	subs     []*nats.Subscription
	opts     clientOptions
}

func NewServer(
	cfg *config.Config,
	hub *Hub,
	chats chat.Service,
	users directory.Service,
	tokens *pasetotoken.Manager,
	rdb *redis.Client,
	nc *nats.Conn,
) *Server {
	rt := cfg.Realtime
	opts := clientOptions{
		writeTimeout: secondsOr(rt.WriteTimeoutSec, 10),
		pongTimeout:  secondsOr(rt.PongTimeoutSec, 60),
		maxMessage:   int64(rt.MaxMessageBytes),
		sendBuffer:   rt.SendBufferSize,
	}
	if opts.maxMessage <= 0 {
		opts.maxMessage = 16 << 10
	}
	if opts.sendBuffer <= 0 {
		opts.sendBuffer = 64
	}

	return &Server{
		cfg:    rt,
		hub:    hub,
		chats:  chats,
		users:  users,
		tokens: tokens,
		rdb:    rdb,
		nc:     nc,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: secondsOr(rt.HandshakeTimeoutSec, 10),
			ReadBufferSize:   4096,
			WriteBufferSize:  4096,
			// Browsers send credentials via the token query param, not
			// cookies, so cross-origin upgrades carry no ambient authority.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		opts: opts,
	}
}

func secondsOr(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func (s *Server) Start(ctx context.Context) error {
	if err := s.subscribe(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("realtime server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("realtime server failed", "error", err)
		}
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	for _, sub := range s.subs {
		_ = sub.Drain()
	}
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}

// subscribe bridges NATS subjects into hub groups. The trailing subject
// token is the target user or chat ID, so one wildcard covers everyone.
func (s *Server) subscribe() error {
	type bridge struct {
		subject string
		handler nats.MsgHandler
	}
	bridges := []bridge{
		{events.SubjectRequestCreatedPrefix + ">", s.onRequestCreated},
		{events.SubjectRequestRespondedPrefix + ">", s.onRequestResponded},
		{events.SubjectMessageNewPrefix + ">", s.onMessageNew},
	}

	for _, b := range bridges {
		sub, err := s.nc.Subscribe(b.subject, b.handler)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", b.subject, err)
		}
		s.subs = append(s.subs, sub)
	}
	return nil
}

func (s *Server) onRequestCreated(m *nats.Msg) {
	var ev events.ChatRequestEvent
	if err := json.Unmarshal(m.Data, &ev); err != nil {
		return
	}
	if userID, ok := subjectID(m.Subject); ok {
		s.hub.BroadcastToUser(userID, NewChatRequest(ev))
	}
}

func (s *Server) onRequestResponded(m *nats.Msg) {
	var ev events.ChatRequestResponseEvent
	if err := json.Unmarshal(m.Data, &ev); err != nil {
		return
	}
	if userID, ok := subjectID(m.Subject); ok {
		s.hub.BroadcastToUser(userID, NewChatRequestResponse(ev))
	}
}

func (s *Server) onMessageNew(m *nats.Msg) {
	var ev events.MessageEvent
	if err := json.Unmarshal(m.Data, &ev); err != nil {
		return
	}
	if chatID, ok := subjectID(m.Subject); ok {
		s.hub.BroadcastToChat(chatID, NewReceiveMessage(ev))
	}
}

func subjectID(subject string) (uuid.UUID, bool) {
	i := strings.LastIndex(subject, ".")
	if i < 0 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(subject[i+1:])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Connection handling
// ---------------------------------------------------------------------------

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	claims, err := s.authenticate(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(s.hub, conn, claims.UserID, claims.Role, s.opts)
	s.hub.Register(c)

	// The request context dies when this handler returns, so pumps run on
	// their own context for the lifetime of the socket.
	go c.writePump()
	go c.readPump(context.Background(), s)
}

// authenticate validates the ?token= access token the same way the REST
// middleware does, including the Redis session check.
func (s *Server) authenticate(r *http.Request) (*pasetotoken.Claims, error) {
	tok := r.URL.Query().Get("token")
	if tok == "" {
		return nil, errors.New("missing token")
	}

	claims, err := s.tokens.Verify(tok)
	if err != nil {
		return nil, err
	}
	if claims.Type != pasetotoken.TokenTypeAccess {
		return nil, errors.New("not an access token")
	}
	if claims.SessionID != nil {
		key := "session:" + claims.SessionID.String()
		if err := s.rdb.Get(r.Context(), key).Err(); err != nil {
			return nil, errors.New("session expired")
		}
	}
	return claims, nil
}

// ---------------------------------------------------------------------------
// Client frame dispatch
// ---------------------------------------------------------------------------

func (s *Server) handleClientMessage(ctx context.Context, c *Client, msg ClientMessage) {
	switch msg.Action {
	case ActionJoinChat:
		s.joinChat(ctx, c, msg.ChatID)
	case ActionLeaveChat:
		s.hub.LeaveChat(c, msg.ChatID)
	case ActionSendMessage:
		s.sendMessage(ctx, c, msg)
	default:
		_ = c.Send(NewError("unknown action"))
	}
}

func (s *Server) joinChat(ctx context.Context, c *Client, chatID uuid.UUID) {
	authorized, err := s.chats.IsAuthorized(ctx, chatID, c.userID)
	if err != nil {
		_ = c.Send(NewError("could not join chat"))
		return
	}
	if !authorized {
		_ = c.Send(NewError("not authorized for this chat"))
		return
	}

	s.hub.JoinChat(c, chatID)
	s.replayHistory(ctx, c, chatID)
}

// replayHistory sends the chat's full stored history to the joining client
// only, oldest first, so the view catches up before live traffic. History
// pages server-side, so the replay walks every page.
func (s *Server) replayHistory(ctx context.Context, c *Client, chatID uuid.UUID) {
	const perPage = 200

	names := make(map[uuid.UUID]string)
	for page := 1; ; page++ {
		msgs, err := s.chats.History(ctx, chatID, c.userID, chat.HistoryRequest{Page: page, PerPage: perPage})
		if err != nil {
			_ = c.Send(NewError("could not load chat history"))
			return
		}

		for _, m := range msgs {
			name, ok := names[m.SenderUserID]
			if !ok {
				name, _ = s.users.DisplayName(ctx, m.SenderUserID)
				names[m.SenderUserID] = name
			}
			_ = c.Send(NewReceiveMessage(events.MessageEvent{
				ChatID:       chatID,
				MessageID:    m.ID,
				SenderUserID: m.SenderUserID,
				SenderName:   name,
				Body:         m.Body,
				SentAt:       m.SentAt,
			}))
		}

		if len(msgs) < perPage {
			return
		}
	}
}

func (s *Server) sendMessage(ctx context.Context, c *Client, msg ClientMessage) {
	_, err := s.chats.SendMessage(ctx, msg.ChatID, c.userID, msg.Message)
	switch {
	case err == nil:
		// Delivery to the chat group, sender included, rides the NATS
		// bridge so every instance fans out the same event.
	case errors.Is(err, chat.ErrEmptyMessage):
		_ = c.Send(NewError("message body is empty"))
	case errors.Is(err, chat.ErrChatClosed):
		_ = c.Send(NewError("chat is closed"))
	case errors.Is(err, chat.ErrNotFound), errors.Is(err, chat.ErrNotParticipant):
		_ = c.Send(NewError("not authorized for this chat"))
	default:
		slog.Error("send message failed", "chat_id", msg.ChatID, "user_id", c.userID, "error", err)
		_ = c.Send(NewError("could not send message"))
	}
}
