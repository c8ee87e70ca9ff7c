// Package chat stores messages and guards access to the channels opened by
// accepted session requests.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/mindchat/mindchat_backend/internal/events"
	"github.com/mindchat/mindchat_backend/internal/repo"
	entchat "github.com/mindchat/mindchat_backend/internal/repo/chat"
	entmsg "github.com/mindchat/mindchat_backend/internal/repo/chatmessage"
	entpatient "github.com/mindchat/mindchat_backend/internal/repo/patient"
	entpsych "github.com/mindchat/mindchat_backend/internal/repo/psychologist"
	entsr "github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Summary is a chat on a dashboard together with the other side's name.
type Summary struct {
	Chat            *repo.Chat
	CounterpartName string
}

type HistoryRequest struct {
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, chatID, userID uuid.UUID) (*repo.Chat, error)
	IsAuthorized(ctx context.Context, chatID, userID uuid.UUID) (bool, error)
	SendMessage(ctx context.Context, chatID, senderUserID uuid.UUID, body string) (*repo.ChatMessage, error)
	History(ctx context.Context, chatID, userID uuid.UUID, req HistoryRequest) ([]*repo.ChatMessage, error)
	ListFor(ctx context.Context, userID uuid.UUID, role string) ([]Summary, error)
	Close(ctx context.Context, chatID, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &chatService{db: db, nc: nc}
}

func (s *chatService) Get(ctx context.Context, chatID, userID uuid.UUID) (*repo.Chat, error) {
	c, _, err := s.authorizedChat(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IsAuthorized reports whether the user is one of the chat's two
// participants. Any lookup failure reads as unauthorized.
func (s *chatService) IsAuthorized(ctx context.Context, chatID, userID uuid.UUID) (bool, error) {
	_, _, err := s.authorizedChat(ctx, chatID, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotParticipant):
		return false, nil
	default:
		return false, err
	}
}

func (s *chatService) SendMessage(ctx context.Context, chatID, senderUserID uuid.UUID, body string) (*repo.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	c, _, err := s.authorizedChat(ctx, chatID, senderUserID)
	if err != nil {
		return nil, err
	}
	if c.IsClosed {
		return nil, ErrChatClosed
	}

	msg, err := s.db.ChatMessage.Create().
		SetChatID(chatID).
		SetSenderUserID(senderUserID).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	_ = s.db.Chat.Update().
		Where(entchat.ID(chatID)).
		SetLastMessageAt(msg.SentAt).
		Exec(ctx)

	senderName := ""
	if u, err := s.db.User.Get(ctx, senderUserID); err == nil {
		senderName = u.FullName
	}
	s.publish(events.SubjectMessageNew(chatID), events.MessageEvent{
		ChatID:       chatID,
		MessageID:    msg.ID,
		SenderUserID: senderUserID,
		SenderName:   senderName,
		Body:         msg.Body,
		SentAt:       msg.SentAt,
	})

	return msg, nil
}

func (s *chatService) History(ctx context.Context, chatID, userID uuid.UUID, req HistoryRequest) ([]*repo.ChatMessage, error) {
	if _, _, err := s.authorizedChat(ctx, chatID, userID); err != nil {
		return nil, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 200 {
		req.PerPage = 100
	}
	offset := (req.Page - 1) * req.PerPage

	// Oldest first; message IDs are time-ordered and break sent_at ties.
	msgs, err := s.db.ChatMessage.Query().
		Where(entmsg.ChatID(chatID)).
		Order(
			entmsg.BySentAt(sql.OrderAsc()),
			entmsg.ByID(sql.OrderAsc()),
		).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *chatService) ListFor(ctx context.Context, userID uuid.UUID, role string) ([]Summary, error) {
	var (
		requestIDs []uuid.UUID
		err        error
	)
	switch role {
	case string(entuser.RolePsychologist):
		requestIDs, err = s.psychologistRequestIDs(ctx, userID)
	default:
		requestIDs, err = s.patientRequestIDs(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	if len(requestIDs) == 0 {
		return []Summary{}, nil
	}

	chats, err := s.db.Chat.Query().
		Where(entchat.SessionRequestIDIn(requestIDs...)).
		Order(entchat.ByLastMessageAt(sql.OrderDesc(), sql.OrderNullsLast())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	out := make([]Summary, 0, len(chats))
	for _, c := range chats {
		patientUserID, psychUserID, err := s.chatParties(ctx, c)
		if err != nil {
			return nil, err
		}
		counterpart := patientUserID
		if counterpart == userID {
			counterpart = psychUserID
		}
		name := ""
		if u, err := s.db.User.Get(ctx, counterpart); err == nil {
			name = u.FullName
		}
		out = append(out, Summary{Chat: c, CounterpartName: name})
	}
	return out, nil
}

// Close is idempotent; closing an already closed chat is a no-op.
func (s *chatService) Close(ctx context.Context, chatID, userID uuid.UUID) error {
	if _, _, err := s.authorizedChat(ctx, chatID, userID); err != nil {
		return err
	}

	_, err := s.db.Chat.Update().
		Where(
			entchat.ID(chatID),
			entchat.IsClosed(false),
		).
		SetIsClosed(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("close chat: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// authorizedChat loads the chat and verifies userID is one of its parties.
func (s *chatService) authorizedChat(ctx context.Context, chatID, userID uuid.UUID) (*repo.Chat, *repo.SessionRequest, error) {
	c, err := s.db.Chat.Get(ctx, chatID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("get chat: %w", err)
	}

	sr, err := s.db.SessionRequest.Get(ctx, c.SessionRequestID)
	if err != nil {
		return nil, nil, fmt.Errorf("get session request: %w", err)
	}

	patientUserID, psychUserID, err := s.partyUserIDs(ctx, sr)
	if err != nil {
		return nil, nil, err
	}
	if userID != patientUserID && userID != psychUserID {
		return nil, nil, ErrNotParticipant
	}
	return c, sr, nil
}

func (s *chatService) chatParties(ctx context.Context, c *repo.Chat) (patientUserID, psychUserID uuid.UUID, err error) {
	sr, err := s.db.SessionRequest.Get(ctx, c.SessionRequestID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get session request: %w", err)
	}
	return s.partyUserIDs(ctx, sr)
}

func (s *chatService) partyUserIDs(ctx context.Context, sr *repo.SessionRequest) (patientUserID, psychUserID uuid.UUID, err error) {
	patient, err := s.db.Patient.Get(ctx, sr.PatientID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get patient: %w", err)
	}
	psych, err := s.db.Psychologist.Get(ctx, sr.PsychologistID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("get psychologist: %w", err)
	}
	return patient.UserID, psych.UserID, nil
}

func (s *chatService) patientRequestIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}
	ids, err := s.db.SessionRequest.Query().
		Where(
			entsr.PatientID(patient.ID),
			entsr.StatusEQ(entsr.StatusAccepted),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accepted requests: %w", err)
	}
	return ids, nil
}

func (s *chatService) psychologistRequestIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	psych, err := s.db.Psychologist.Query().
		Where(entpsych.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get psychologist profile: %w", err)
	}
	ids, err := s.db.SessionRequest.Query().
		Where(
			entsr.PsychologistID(psych.ID),
			entsr.StatusEQ(entsr.StatusAccepted),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accepted requests: %w", err)
	}
	return ids, nil
}

func (s *chatService) publish(subject string, payload any) {
	if s.nc == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = s.nc.Publish(subject, data)
}
