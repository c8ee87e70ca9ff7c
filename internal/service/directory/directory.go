// Package directory manages user accounts and the patient/psychologist
// profiles attached to them.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
	entpatient "github.com/mindchat/mindchat_backend/internal/repo/patient"
	entpsych "github.com/mindchat/mindchat_backend/internal/repo/psychologist"
	entpt "github.com/mindchat/mindchat_backend/internal/repo/psychologisttag"
	enttag "github.com/mindchat/mindchat_backend/internal/repo/tag"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
	"github.com/mindchat/mindchat_backend/pkg/email"
	"github.com/mindchat/mindchat_backend/pkg/util/password"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterPatientRequest struct {
	FullName       string
	Email          string
	Password       string
	EmotionalState *string
}

type RegisterPsychologistRequest struct {
	FullName            string
	Email               string
	Password            string
	ProfessionalLicense string
	University          string
	GraduationYear      int
	Bio                 string
	Tags                []string
}

// PsychologistProfile is a visible psychologist together with the tags
// shown on the browse page.
type PsychologistProfile struct {
	Psychologist *repo.Psychologist
	FullName     string
	Tags         []string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	RegisterPatient(ctx context.Context, req RegisterPatientRequest) (*repo.User, error)
	RegisterPsychologist(ctx context.Context, req RegisterPsychologistRequest) (*repo.User, error)
	UserByEmail(ctx context.Context, email string) (*repo.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	DisplayName(ctx context.Context, userID uuid.UUID) (string, error)
	PatientByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	PsychologistByUserID(ctx context.Context, userID uuid.UUID) (*repo.Psychologist, error)
	SetVisibility(ctx context.Context, psychUserID uuid.UUID, visible bool) error
	SetEmotionalState(ctx context.Context, patientUserID uuid.UUID, state string) error
	VisiblePsychologists(ctx context.Context) ([]PsychologistProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db     *repo.Client
	mailer *email.Client
	hash   *password.Params
}

func New(db *repo.Client, mailer *email.Client, hash *password.Params) Service {
	return &directoryService{db: db, mailer: mailer, hash: hash}
}

func (s *directoryService) RegisterPatient(ctx context.Context, req RegisterPatientRequest) (*repo.User, error) {
	u, err := s.createUser(ctx, req.FullName, req.Email, req.Password, entuser.RolePatient, func(ctx context.Context, tx *repo.Tx, userID uuid.UUID) error {
		c := tx.Patient.Create().SetUserID(userID)
		if req.EmotionalState != nil {
			c = c.SetEmotionalState(*req.EmotionalState)
		}
		return c.Exec(ctx)
	})
	if err != nil {
		return nil, err
	}

	s.sendWelcome(ctx, u)
	return u, nil
}

func (s *directoryService) RegisterPsychologist(ctx context.Context, req RegisterPsychologistRequest) (*repo.User, error) {
	u, err := s.createUser(ctx, req.FullName, req.Email, req.Password, entuser.RolePsychologist, func(ctx context.Context, tx *repo.Tx, userID uuid.UUID) error {
		p, err := tx.Psychologist.Create().
			SetUserID(userID).
			SetProfessionalLicense(req.ProfessionalLicense).
			SetUniversity(req.University).
			SetGraduationYear(req.GraduationYear).
			SetBio(req.Bio).
			Save(ctx)
		if err != nil {
			return err
		}
		return attachTags(ctx, tx, p.ID, req.Tags)
	})
	if err != nil {
		return nil, err
	}

	s.sendWelcome(ctx, u)
	return u, nil
}

// createUser creates the account row and the role profile in one transaction.
func (s *directoryService) createUser(ctx context.Context, fullName, rawEmail, plainPassword string, role entuser.Role, profile func(context.Context, *repo.Tx, uuid.UUID) error) (*repo.User, error) {
	addr := strings.ToLower(strings.TrimSpace(rawEmail))

	hash, err := password.HashWithParams(plainPassword, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	u, err := tx.User.Create().
		SetFullName(strings.TrimSpace(fullName)).
		SetEmail(addr).
		SetPasswordHash(hash).
		SetRole(role).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := profile(ctx, tx, u.ID); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}
	return u, nil
}

func attachTags(ctx context.Context, tx *repo.Tx, psychID uuid.UUID, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		t, err := tx.Tag.Query().Where(enttag.Name(name)).Only(ctx)
		if repo.IsNotFound(err) {
			t, err = tx.Tag.Create().SetName(name).Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("resolve tag %q: %w", name, err)
		}

		err = tx.PsychologistTag.Create().
			SetPsychologistID(psychID).
			SetTagID(t.ID).
			Exec(ctx)
		if err != nil && !repo.IsConstraintError(err) {
			return fmt.Errorf("attach tag %q: %w", name, err)
		}
	}
	return nil
}

func (s *directoryService) sendWelcome(ctx context.Context, u *repo.User) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	if err := s.mailer.Send(ctx, email.BuildWelcomeEmail(u.Email, u.FullName)); err != nil {
		slog.Warn("welcome email failed", "user_id", u.ID, "error", err)
	}
}

func (s *directoryService) UserByEmail(ctx context.Context, addr string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.Email(strings.ToLower(strings.TrimSpace(addr)))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *directoryService) UserByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *directoryService) DisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.UserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.FullName, nil
}

func (s *directoryService) PatientByUserID(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient profile: %w", err)
	}
	return p, nil
}

func (s *directoryService) PsychologistByUserID(ctx context.Context, userID uuid.UUID) (*repo.Psychologist, error) {
	p, err := s.db.Psychologist.Query().
		Where(entpsych.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPsychologistNotFound
		}
		return nil, fmt.Errorf("get psychologist profile: %w", err)
	}
	return p, nil
}

func (s *directoryService) SetVisibility(ctx context.Context, psychUserID uuid.UUID, visible bool) error {
	n, err := s.db.Psychologist.Update().
		Where(entpsych.UserID(psychUserID)).
		SetIsProfileVisible(visible).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}
	if n == 0 {
		return ErrPsychologistNotFound
	}
	return nil
}

func (s *directoryService) SetEmotionalState(ctx context.Context, patientUserID uuid.UUID, state string) error {
	n, err := s.db.Patient.Update().
		Where(entpatient.UserID(patientUserID)).
		SetEmotionalState(state).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set emotional state: %w", err)
	}
	if n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (s *directoryService) VisiblePsychologists(ctx context.Context) ([]PsychologistProfile, error) {
	psychs, err := s.db.Psychologist.Query().
		Where(entpsych.IsProfileVisible(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list psychologists: %w", err)
	}
	if len(psychs) == 0 {
		return []PsychologistProfile{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(psychs))
	psychIDs := make([]uuid.UUID, 0, len(psychs))
	for _, p := range psychs {
		userIDs = append(userIDs, p.UserID)
		psychIDs = append(psychIDs, p.ID)
	}

	users, err := s.db.User.Query().
		Where(entuser.IDIn(userIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load psychologist users: %w", err)
	}
	nameByUser := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		nameByUser[u.ID] = u.FullName
	}

	tagsByPsych, err := s.tagsFor(ctx, psychIDs)
	if err != nil {
		return nil, err
	}

	out := make([]PsychologistProfile, 0, len(psychs))
	for _, p := range psychs {
		out = append(out, PsychologistProfile{
			Psychologist: p,
			FullName:     nameByUser[p.UserID],
			Tags:         tagsByPsych[p.ID],
		})
	}
	return out, nil
}

func (s *directoryService) tagsFor(ctx context.Context, psychIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	links, err := s.db.PsychologistTag.Query().
		Where(entpt.PsychologistIDIn(psychIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load psychologist tags: %w", err)
	}
	if len(links) == 0 {
		return map[uuid.UUID][]string{}, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		tagIDs = append(tagIDs, l.TagID)
	}
	tags, err := s.db.Tag.Query().
		Where(enttag.IDIn(tagIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	nameByTag := make(map[uuid.UUID]string, len(tags))
	for _, t := range tags {
		nameByTag[t.ID] = t.Name
	}

	out := make(map[uuid.UUID][]string, len(links))
	for _, l := range links {
		if name, ok := nameByTag[l.TagID]; ok {
			out[l.PsychologistID] = append(out[l.PsychologistID], name)
		}
	}
	return out, nil
}
