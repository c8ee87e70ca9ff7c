package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/service/chat"
	pasetotoken "github.com/mindchat/mindchat_backend/pkg/paseto"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrNotParticipant):
		return forbidden(c)
	case errors.Is(err, chat.ErrChatClosed):
		return conflict(c, err.Error())
	case errors.Is(err, chat.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /chats
func (h *ChatHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	chats, err := h.svc.ListFor(c.Context(), claims.UserID, claims.Role)
	if err != nil {
		return mapChatError(c, err)
	}

	type item struct {
		ID              string     `json:"id"`
		CounterpartName string     `json:"counterpart_name"`
		IsClosed        bool       `json:"is_closed"`
		LastMessageAt   *time.Time `json:"last_message_at"`
		CreatedAt       time.Time  `json:"created_at"`
	}
	out := make([]item, 0, len(chats))
	for _, s := range chats {
		out = append(out, item{
			ID:              s.Chat.ID.String(),
			CounterpartName: s.CounterpartName,
			IsClosed:        s.Chat.IsClosed,
			LastMessageAt:   s.Chat.LastMessageAt,
			CreatedAt:       s.Chat.CreatedAt,
		})
	}
	return ok(c, out)
}

// GET /chats/:id/messages
func (h *ChatHandler) History(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid chat id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.History(c.Context(), chatID, userID, chat.HistoryRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapChatError(c, err)
	}

	type item struct {
		ID           string    `json:"id"`
		SenderUserID string    `json:"sender_user_id"`
		Body         string    `json:"body"`
		SentAt       time.Time `json:"sent_at"`
	}
	out := make([]item, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, item{
			ID:           m.ID.String(),
			SenderUserID: m.SenderUserID.String(),
			Body:         m.Body,
			SentAt:       m.SentAt,
		})
	}
	return ok(c, out)
}

// POST /chats/:id/messages
func (h *ChatHandler) SendMessage(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid chat id")
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), chatID, userID, body.Message)
	if err != nil {
		return mapChatError(c, err)
	}

	return created(c, fiber.Map{
		"id":      msg.ID.String(),
		"sent_at": msg.SentAt,
	})
}

// POST /chats/:id/close
func (h *ChatHandler) Close(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	chatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid chat id")
	}

	if err := h.svc.Close(c.Context(), chatID, userID); err != nil {
		return mapChatError(c, err)
	}
	return noContent(c)
}
