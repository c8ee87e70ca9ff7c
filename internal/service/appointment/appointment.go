// Package appointment manages the follow-up sessions psychologists book
// from an ongoing chat.
package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
	entappt "github.com/mindchat/mindchat_backend/internal/repo/appointment"
	entpatient "github.com/mindchat/mindchat_backend/internal/repo/patient"
	entpsych "github.com/mindchat/mindchat_backend/internal/repo/psychologist"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateFromChatRequest struct {
	ChatID      uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

type SearchRequest struct {
	PatientName      string
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
}

type UpdateRequest struct {
	ScheduledAt *time.Time
	Notes       *string
}

// Entry is an appointment together with the patient's display name.
type Entry struct {
	Appointment *repo.Appointment
	PatientName string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateFromChat(ctx context.Context, psychUserID uuid.UUID, req CreateFromChatRequest) (*repo.Appointment, error)
	Search(ctx context.Context, psychUserID uuid.UUID, req SearchRequest) ([]Entry, error)
	Get(ctx context.Context, psychUserID, apptID uuid.UUID) (*repo.Appointment, error)
	Update(ctx context.Context, psychUserID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error)
	Cancel(ctx context.Context, psychUserID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &appointmentService{db: db}
}

func (s *appointmentService) CreateFromChat(ctx context.Context, psychUserID uuid.UUID, req CreateFromChatRequest) (*repo.Appointment, error) {
	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrScheduledInPast
	}

	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return nil, err
	}

	c, err := s.db.Chat.Get(ctx, req.ChatID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}
	sr, err := s.db.SessionRequest.Get(ctx, c.SessionRequestID)
	if err != nil {
		return nil, fmt.Errorf("get session request: %w", err)
	}
	if sr.PsychologistID != psych.ID {
		return nil, ErrNotAssigned
	}

	// The partial unique index on (psychologist_id, scheduled_at) WHERE NOT
	// is_cancelled decides slot conflicts, including concurrent books.
	appt, err := s.db.Appointment.Create().
		SetPsychologistID(psych.ID).
		SetPatientID(sr.PatientID).
		SetScheduledAt(req.ScheduledAt.UTC()).
		SetNotes(req.Notes).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrTimeSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Search(ctx context.Context, psychUserID uuid.UUID, req SearchRequest) ([]Entry, error) {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return nil, err
	}

	q := s.db.Appointment.Query().
		Where(entappt.PsychologistID(psych.ID))

	if !req.IncludeCancelled {
		q = q.Where(entappt.IsCancelled(false))
	}
	if req.From != nil {
		q = q.Where(entappt.ScheduledAtGTE(req.From.UTC()))
	}
	if req.To != nil {
		q = q.Where(entappt.ScheduledAtLT(req.To.UTC()))
	}

	if req.PatientName != "" {
		patientIDs, err := s.patientIDsByName(ctx, req.PatientName)
		if err != nil {
			return nil, err
		}
		if len(patientIDs) == 0 {
			return []Entry{}, nil
		}
		q = q.Where(entappt.PatientIDIn(patientIDs...))
	}

	appts, err := q.
		Order(entappt.ByScheduledAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search appointments: %w", err)
	}

	out := make([]Entry, 0, len(appts))
	for _, a := range appts {
		name, err := s.patientName(ctx, a.PatientID)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Appointment: a, PatientName: name})
	}
	return out, nil
}

func (s *appointmentService) Get(ctx context.Context, psychUserID, apptID uuid.UUID) (*repo.Appointment, error) {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return nil, err
	}
	appt, err := s.db.Appointment.Query().
		Where(
			entappt.ID(apptID),
			entappt.PsychologistID(psych.ID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) Update(ctx context.Context, psychUserID, apptID uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := s.Get(ctx, psychUserID, apptID)
	if err != nil {
		return nil, err
	}

	u := s.db.Appointment.UpdateOne(appt)
	if req.ScheduledAt != nil {
		if req.ScheduledAt.Before(time.Now()) {
			return nil, ErrScheduledInPast
		}
		u = u.SetScheduledAt(req.ScheduledAt.UTC())
	}
	if req.Notes != nil {
		u = u.SetNotes(*req.Notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrTimeSlotTaken
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return updated, nil
}

// Cancel soft-cancels; cancelling an already cancelled appointment is a
// no-op. The freed slot becomes bookable again.
func (s *appointmentService) Cancel(ctx context.Context, psychUserID, apptID uuid.UUID) error {
	psych, err := s.psychologistByUser(ctx, psychUserID)
	if err != nil {
		return err
	}

	exists, err := s.db.Appointment.Query().
		Where(
			entappt.ID(apptID),
			entappt.PsychologistID(psych.ID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	_, err = s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.IsCancelled(false),
		).
		SetIsCancelled(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) psychologistByUser(ctx context.Context, psychUserID uuid.UUID) (*repo.Psychologist, error) {
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

func (s *appointmentService) patientIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	users, err := s.db.User.Query().
		Where(entuser.FullNameContainsFold(name)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search users by name: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	userIDs := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	ids, err := s.db.Patient.Query().
		Where(entpatient.UserIDIn(userIDs...)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve patient profiles: %w", err)
	}
	return ids, nil
}

func (s *appointmentService) patientName(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("get patient: %w", err)
	}
	u, err := s.db.User.Get(ctx, patient.UserID)
	if err != nil {
		return "", fmt.Errorf("get patient user: %w", err)
	}
	return u.FullName, nil
}
