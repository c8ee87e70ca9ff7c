// Package sessionrequest implements the pending → accepted|rejected request
// flow between patients and psychologists. Accepting a request creates the
// chat, or reuses the open chat if the pair already has one.
package sessionrequest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/mindchat/mindchat_backend/internal/events"
	"github.com/mindchat/mindchat_backend/internal/repo"
	entchat "github.com/mindchat/mindchat_backend/internal/repo/chat"
	entpatient "github.com/mindchat/mindchat_backend/internal/repo/patient"
	entpsych "github.com/mindchat/mindchat_backend/internal/repo/psychologist"
	entsr "github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientUserID  uuid.UUID
	PsychologistID uuid.UUID
	InitialMessage string
}

// PendingRequest is a request on a psychologist's inbox together with the
// patient's display name.
type PendingRequest struct {
	Request     *repo.SessionRequest
	PatientName string
}

// AcceptResult reports the chat a successful accept resolved to. Reused is
// true when the pair already had an open chat and no new one was created.
type AcceptResult struct {
	Chat   *repo.Chat
	Reused bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.SessionRequest, error)
	Accept(ctx context.Context, psychUserID, requestID uuid.UUID) (*AcceptResult, error)
	Reject(ctx context.Context, psychUserID, requestID uuid.UUID) error
	GetPending(ctx context.Context, psychUserID uuid.UUID) ([]PendingRequest, error)
	ListForPatient(ctx context.Context, patientUserID uuid.UUID) ([]*repo.SessionRequest, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type requestService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &requestService{db: db, nc: nc}
}

func (s *requestService) Create(ctx context.Context, req CreateRequest) (*repo.SessionRequest, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.UserID(req.PatientUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	psych, err := s.db.Psychologist.Query().
		Where(
			entpsych.ID(req.PsychologistID),
			entpsych.IsProfileVisible(true),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPsychologistUnavailable
		}
		return nil, fmt.Errorf("get psychologist: %w", err)
	}

	// The partial unique index on (patient_id, psychologist_id) WHERE
	// status = 'pending' rejects a second pending request even under
	// concurrent creates, so no pre-check is needed.
	sr, err := s.db.SessionRequest.Create().
		SetPatientID(patient.ID).
		SetPsychologistID(psych.ID).
		SetInitialMessage(req.InitialMessage).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("create session request: %w", err)
	}

	patientName, _ := s.userFullName(ctx, req.PatientUserID)
	s.publish(events.SubjectRequestCreated(psych.UserID), events.ChatRequestEvent{
		SessionRequestID:   sr.ID,
		PatientUserID:      req.PatientUserID,
		PsychologistUserID: psych.UserID,
		PatientName:        patientName,
		InitialMessage:     sr.InitialMessage,
		Timestamp:          sr.CreatedAt,
	})

	return sr, nil
}

func (s *requestService) Accept(ctx context.Context, psychUserID, requestID uuid.UUID) (*AcceptResult, error) {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	// Compare-and-set on the status column; a concurrent accept or reject
	// already moved the row and gets reported, not overwritten.
	n, err := tx.SessionRequest.Update().
		Where(
			entsr.ID(requestID),
			entsr.PsychologistID(psych.ID),
			entsr.StatusEQ(entsr.StatusPending),
		).
		SetStatus(entsr.StatusAccepted).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("accept session request: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, s.transitionFailure(ctx, psych.ID, requestID)
	}

	sr, err := tx.SessionRequest.Get(ctx, requestID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("reload session request: %w", err)
	}

	chat, reused, err := resolveChat(ctx, tx, sr)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}

	s.publishResponse(ctx, sr, psych, true, &chat.ID)
	return &AcceptResult{Chat: chat, Reused: reused}, nil
}

// resolveChat finds the open chat for the request's pair or creates a new
// one bound to this request.
func resolveChat(ctx context.Context, tx *repo.Tx, sr *repo.SessionRequest) (*repo.Chat, bool, error) {
	acceptedIDs, err := tx.SessionRequest.Query().
		Where(
			entsr.PatientID(sr.PatientID),
			entsr.PsychologistID(sr.PsychologistID),
			entsr.StatusEQ(entsr.StatusAccepted),
		).
		IDs(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list accepted requests: %w", err)
	}

	existing, err := tx.Chat.Query().
		Where(
			entchat.SessionRequestIDIn(acceptedIDs...),
			entchat.IsClosed(false),
		).
		First(ctx)
	if err == nil {
		return existing, true, nil
	}
	if !repo.IsNotFound(err) {
		return nil, false, fmt.Errorf("find open chat: %w", err)
	}

	chat, err := tx.Chat.Create().
		SetSessionRequestID(sr.ID).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("create chat: %w", err)
	}
	return chat, false, nil
}

func (s *requestService) Reject(ctx context.Context, psychUserID, requestID uuid.UUID) error {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return err
	}

	n, err := s.db.SessionRequest.Update().
		Where(
			entsr.ID(requestID),
			entsr.PsychologistID(psych.ID),
			entsr.StatusEQ(entsr.StatusPending),
		).
		SetStatus(entsr.StatusRejected).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reject session request: %w", err)
	}
	if n == 0 {
		return s.transitionFailure(ctx, psych.ID, requestID)
	}

	sr, err := s.db.SessionRequest.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("reload session request: %w", err)
	}

	s.publishResponse(ctx, sr, psych, false, nil)
	return nil
}

func (s *requestService) GetPending(ctx context.Context, psychUserID uuid.UUID) ([]PendingRequest, error) {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return nil, err
	}

	reqs, err := s.db.SessionRequest.Query().
		Where(
			entsr.PsychologistID(psych.ID),
			entsr.StatusEQ(entsr.StatusPending),
		).
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	out := make([]PendingRequest, 0, len(reqs))
	for _, sr := range reqs {
		name, err := s.patientFullName(ctx, sr.PatientID)
		if err != nil {
			return nil, err
		}
		out = append(out, PendingRequest{Request: sr, PatientName: name})
	}
	return out, nil
}

func (s *requestService) ListForPatient(ctx context.Context, patientUserID uuid.UUID) ([]*repo.SessionRequest, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.UserID(patientUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}

	reqs, err := s.db.SessionRequest.Query().
		Where(entsr.PatientID(patient.ID)).
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patient requests: %w", err)
	}
	return reqs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *requestService) psychologistByUser(ctx context.Context, psychUserID uuid.UUID) (*repo.Psychologist, error) {
	psych, err := s.db.Psychologist.Query().
		Where(entpsych.UserID(psychUserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPsychologistNotFound
		}
		return nil, fmt.Errorf("get psychologist profile: %w", err)
	}
	return psych, nil
}

// transitionFailure explains a zero-row CAS update: the request either does
// not exist for this psychologist or has already left pending.
func (s *requestService) transitionFailure(ctx context.Context, psychID, requestID uuid.UUID) error {
	exists, err := s.db.SessionRequest.Query().
		Where(
			entsr.ID(requestID),
			entsr.PsychologistID(psychID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("inspect session request: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrAlreadyProcessed
}

func (s *requestService) publishResponse(ctx context.Context, sr *repo.SessionRequest, psych *repo.Psychologist, accepted bool, chatID *uuid.UUID) {
	patient, err := s.db.Patient.Get(ctx, sr.PatientID)
	if err != nil {
		return
	}
	psychName, _ := s.userFullName(ctx, psych.UserID)

	s.publish(events.SubjectRequestResponded(patient.UserID), events.ChatRequestResponseEvent{
		SessionRequestID:   sr.ID,
		PatientUserID:      patient.UserID,
		PsychologistUserID: psych.UserID,
		Accepted:           accepted,
		PsychologistName:   psychName,
		ChatID:             chatID,
		Timestamp:          time.Now().UTC(),
	})
}

func (s *requestService) patientFullName(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get patient: %w", err)
	}
	return s.userFullName(ctx, patient.UserID)
}

func (s *requestService) userFullName(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	return u.FullName, nil
}

func (s *requestService) publish(subject string, payload any) {
	if s.nc == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = s.nc.Publish(subject, data)
}
