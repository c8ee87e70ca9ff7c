package sessionrequest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindchat/mindchat_backend/internal/repo"
	entchat "github.com/mindchat/mindchat_backend/internal/repo/chat"
	"github.com/mindchat/mindchat_backend/internal/repo/enttest"
	entsr "github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
)

type fixture struct {
	db  *repo.Client
	svc Service

	patientUserID uuid.UUID
	psychUserID   uuid.UUID
	psychID       uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	f := &fixture{db: db, svc: New(db, nil)}
	f.patientUserID = createPatient(t, db, "Ana Morales", "ana@example.com")
	f.psychUserID, f.psychID = createPsychologist(t, db, "Laura Ruiz", "ruiz@example.com", true)
	return f
}

func createPatient(t *testing.T, db *repo.Client, name, email string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	u, err := db.User.Create().
		SetFullName(name).
		SetEmail(email).
		SetPasswordHash("irrelevant").
		SetRole(entuser.RolePatient).
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient user: %v", err)
	}
	if _, err := db.Patient.Create().SetUserID(u.ID).Save(ctx); err != nil {
		t.Fatalf("create patient profile: %v", err)
	}
	return u.ID
}

func createPsychologist(t *testing.T, db *repo.Client, name, email string, visible bool) (userID, psychID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	u, err := db.User.Create().
		SetFullName(name).
		SetEmail(email).
		SetPasswordHash("irrelevant").
		SetRole(entuser.RolePsychologist).
		Save(ctx)
	if err != nil {
		t.Fatalf("create psychologist user: %v", err)
	}
	p, err := db.Psychologist.Create().
		SetUserID(u.ID).
		SetProfessionalLicense("PSY-001").
		SetIsProfileVisible(visible).
		Save(ctx)
	if err != nil {
		t.Fatalf("create psychologist profile: %v", err)
	}
	return u.ID, p.ID
}

func (f *fixture) create(t *testing.T, msg string) *repo.SessionRequest {
	t.Helper()
	sr, err := f.svc.Create(context.Background(), CreateRequest{
		PatientUserID:  f.patientUserID,
		PsychologistID: f.psychID,
		InitialMessage: msg,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return sr
}

func TestCreateRejectsSecondPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, "hello")

	_, err := f.svc.Create(ctx, CreateRequest{
		PatientUserID:  f.patientUserID,
		PsychologistID: f.psychID,
		InitialMessage: "hello again",
	})
	if !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("second Create() error = %v, want ErrDuplicateRequest", err)
	}
}

func TestCreateAllowedAfterRequestLeavesPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sr := f.create(t, "hello")
	if err := f.svc.Reject(ctx, f.psychUserID, sr.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	if _, err := f.svc.Create(ctx, CreateRequest{
		PatientUserID:  f.patientUserID,
		PsychologistID: f.psychID,
		InitialMessage: "second try",
	}); err != nil {
		t.Fatalf("Create() after reject error = %v", err)
	}
}

func TestCreateGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, hiddenID := createPsychologist(t, f.db, "Hidden Soto", "hidden@example.com", false)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name: "no patient profile",
			req: CreateRequest{
				PatientUserID:  uuid.New(),
				PsychologistID: f.psychID,
				InitialMessage: "hi",
			},
			wantErr: ErrPatientNotFound,
		},
		{
			name: "hidden psychologist",
			req: CreateRequest{
				PatientUserID:  f.patientUserID,
				PsychologistID: hiddenID,
				InitialMessage: "hi",
			},
			wantErr: ErrPsychologistUnavailable,
		},
		{
			name: "unknown psychologist",
			req: CreateRequest{
				PatientUserID:  f.patientUserID,
				PsychologistID: uuid.New(),
				InitialMessage: "hi",
			},
			wantErr: ErrPsychologistUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAcceptCreatesChat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sr := f.create(t, "hello")
	result, err := f.svc.Accept(ctx, f.psychUserID, sr.ID)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if result.Reused {
		t.Error("Reused = true, want false for the first chat")
	}
	if result.Chat.SessionRequestID != sr.ID {
		t.Errorf("chat bound to request %s, want %s", result.Chat.SessionRequestID, sr.ID)
	}

	reloaded := f.db.SessionRequest.GetX(ctx, sr.ID)
	if reloaded.Status != entsr.StatusAccepted {
		t.Errorf("status = %s, want accepted", reloaded.Status)
	}
}

func TestAcceptReusesOpenChat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.create(t, "hello")
	firstResult, err := f.svc.Accept(ctx, f.psychUserID, first.ID)
	if err != nil {
		t.Fatalf("Accept() first error = %v", err)
	}

	second := f.create(t, "hello again")
	secondResult, err := f.svc.Accept(ctx, f.psychUserID, second.ID)
	if err != nil {
		t.Fatalf("Accept() second error = %v", err)
	}
	if !secondResult.Reused {
		t.Error("Reused = false, want true for an open chat between the same pair")
	}
	if secondResult.Chat.ID != firstResult.Chat.ID {
		t.Errorf("chat = %s, want the existing chat %s", secondResult.Chat.ID, firstResult.Chat.ID)
	}

	// A closed chat is not reused.
	f.db.Chat.Update().Where(entchat.ID(firstResult.Chat.ID)).SetIsClosed(true).SaveX(ctx)

	third := f.create(t, "one more")
	thirdResult, err := f.svc.Accept(ctx, f.psychUserID, third.ID)
	if err != nil {
		t.Fatalf("Accept() third error = %v", err)
	}
	if thirdResult.Reused {
		t.Error("Reused = true after the chat was closed, want a fresh chat")
	}
	if thirdResult.Chat.ID == firstResult.Chat.ID {
		t.Error("accept after close returned the closed chat")
	}
}

func TestRejectThenAccept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sr := f.create(t, "hello")
	if err := f.svc.Reject(ctx, f.psychUserID, sr.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	_, err := f.svc.Accept(ctx, f.psychUserID, sr.ID)
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("Accept() after reject error = %v, want ErrAlreadyProcessed", err)
	}

	reloaded := f.db.SessionRequest.GetX(ctx, sr.ID)
	if reloaded.Status != entsr.StatusRejected {
		t.Errorf("status = %s, want rejected to stand", reloaded.Status)
	}
}

func TestAcceptTransitionFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	otherPsychUserID, _ := createPsychologist(t, f.db, "Marco Díaz", "diaz@example.com", true)

	sr := f.create(t, "hello")
	if _, err := f.svc.Accept(ctx, f.psychUserID, sr.ID); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	tests := []struct {
		name        string
		psychUserID uuid.UUID
		requestID   uuid.UUID
		wantErr     error
	}{
		{"double accept", f.psychUserID, sr.ID, ErrAlreadyProcessed},
		{"unknown request", f.psychUserID, uuid.New(), ErrNotFound},
		{"another psychologist's request", otherPsychUserID, sr.ID, ErrNotFound},
		{"caller has no profile", f.patientUserID, sr.ID, ErrPsychologistNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Accept(ctx, tt.psychUserID, tt.requestID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Accept() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	otherPatientUserID := createPatient(t, f.db, "Beatriz Vega", "vega@example.com")

	first := f.create(t, "from ana")
	if _, err := f.svc.Create(ctx, CreateRequest{
		PatientUserID:  otherPatientUserID,
		PsychologistID: f.psychID,
		InitialMessage: "from beatriz",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	pending, err := f.svc.GetPending(ctx, f.psychUserID)
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("len(pending) = %d, want 2", len(pending))
	}
	if pending[0].PatientName != "Beatriz Vega" {
		t.Errorf("newest pending from %q, want Beatriz Vega first", pending[0].PatientName)
	}

	if _, err := f.svc.Accept(ctx, f.psychUserID, first.ID); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	pending, err = f.svc.GetPending(ctx, f.psychUserID)
	if err != nil {
		t.Fatalf("GetPending() after accept error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("len(pending) after accept = %d, want 1", len(pending))
	}
}
