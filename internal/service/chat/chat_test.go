package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/repo/enttest"
	entsr "github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
)

type fixture struct {
	db  *repo.Client
	svc Service

	patientUserID uuid.UUID
	psychUserID   uuid.UUID
	patientID     uuid.UUID
	psychID       uuid.UUID
	chatID        uuid.UUID
}

// newFixture builds one accepted request with its chat between a patient
// and a psychologist.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	f := &fixture{db: db, svc: New(db, nil)}
	f.patientUserID, f.patientID = createUser(t, db, "Ana Morales", "ana@example.com", entuser.RolePatient)
	f.psychUserID, f.psychID = createUser(t, db, "Laura Ruiz", "ruiz@example.com", entuser.RolePsychologist)
	f.chatID = createChat(t, db, f.patientID, f.psychID)
	return f
}

func createUser(t *testing.T, db *repo.Client, name, email string, role entuser.Role) (userID, profileID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	u, err := db.User.Create().
		SetFullName(name).
		SetEmail(email).
		SetPasswordHash("irrelevant").
		SetRole(role).
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if role == entuser.RolePatient {
		p, err := db.Patient.Create().SetUserID(u.ID).Save(ctx)
		if err != nil {
			t.Fatalf("create patient profile: %v", err)
		}
		return u.ID, p.ID
	}
	p, err := db.Psychologist.Create().
		SetUserID(u.ID).
		SetProfessionalLicense("PSY-001").
		Save(ctx)
	if err != nil {
		t.Fatalf("create psychologist profile: %v", err)
	}
	return u.ID, p.ID
}

func createChat(t *testing.T, db *repo.Client, patientID, psychID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	sr, err := db.SessionRequest.Create().
		SetPatientID(patientID).
		SetPsychologistID(psychID).
		SetInitialMessage("hello").
		SetStatus(entsr.StatusAccepted).
		Save(ctx)
	if err != nil {
		t.Fatalf("create session request: %v", err)
	}
	c, err := db.Chat.Create().SetSessionRequestID(sr.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create chat: %v", err)
	}
	return c.ID
}

func TestIsAuthorizedFailsClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		chatID uuid.UUID
		userID uuid.UUID
		want   bool
	}{
		{"patient side", f.chatID, f.patientUserID, true},
		{"psychologist side", f.chatID, f.psychUserID, true},
		{"stranger", f.chatID, uuid.New(), false},
		{"unknown chat", uuid.New(), f.patientUserID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.IsAuthorized(ctx, tt.chatID, tt.userID)
			if err != nil {
				t.Fatalf("IsAuthorized() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAuthorized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSendMessageGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		chatID  uuid.UUID
		sender  uuid.UUID
		body    string
		wantErr error
	}{
		{"empty body", f.chatID, f.patientUserID, "   ", ErrEmptyMessage},
		{"stranger", f.chatID, uuid.New(), "hi", ErrNotParticipant},
		{"unknown chat", uuid.New(), f.patientUserID, "hi", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SendMessage(ctx, tt.chatID, tt.sender, tt.body)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SendMessage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSendMessageHistoryRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bodies := []string{"hola", "hello", "how are you"}
	senders := []uuid.UUID{f.patientUserID, f.psychUserID, f.patientUserID}
	for i, body := range bodies {
		if _, err := f.svc.SendMessage(ctx, f.chatID, senders[i], body); err != nil {
			t.Fatalf("SendMessage(%q) error = %v", body, err)
		}
	}

	msgs, err := f.svc.History(ctx, f.chatID, f.patientUserID, HistoryRequest{})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(msgs) != len(bodies) {
		t.Fatalf("len(msgs) = %d, want %d", len(msgs), len(bodies))
	}
	for i, m := range msgs {
		if m.Body != bodies[i] {
			t.Errorf("msgs[%d].Body = %q, want %q", i, m.Body, bodies[i])
		}
		if m.SenderUserID != senders[i] {
			t.Errorf("msgs[%d].SenderUserID = %s, want %s", i, m.SenderUserID, senders[i])
		}
	}

	c := f.db.Chat.GetX(ctx, f.chatID)
	if c.LastMessageAt == nil {
		t.Error("LastMessageAt not updated")
	}
}

func TestHistoryPaging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const total = 130
	for i := 1; i <= total; i++ {
		if _, err := f.svc.SendMessage(ctx, f.chatID, f.patientUserID, fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("SendMessage(%d) error = %v", i, err)
		}
	}

	first, err := f.svc.History(ctx, f.chatID, f.patientUserID, HistoryRequest{})
	if err != nil {
		t.Fatalf("History() page 1 error = %v", err)
	}
	if len(first) != 100 {
		t.Fatalf("len(page 1) = %d, want the 100 default", len(first))
	}

	second, err := f.svc.History(ctx, f.chatID, f.patientUserID, HistoryRequest{Page: 2})
	if err != nil {
		t.Fatalf("History() page 2 error = %v", err)
	}
	if len(second) != total-100 {
		t.Fatalf("len(page 2) = %d, want %d", len(second), total-100)
	}

	all := append(first, second...)
	for i, m := range all {
		if want := fmt.Sprintf("msg %d", i+1); m.Body != want {
			t.Fatalf("all[%d].Body = %q, want %q", i, m.Body, want)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.Close(ctx, f.chatID, f.psychUserID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.svc.Close(ctx, f.chatID, f.psychUserID); err != nil {
		t.Fatalf("Close() again error = %v", err)
	}

	if _, err := f.svc.SendMessage(ctx, f.chatID, f.patientUserID, "too late"); !errors.Is(err, ErrChatClosed) {
		t.Fatalf("SendMessage() on closed chat error = %v, want ErrChatClosed", err)
	}

	if err := f.svc.Close(ctx, f.chatID, uuid.New()); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("Close() by stranger error = %v, want ErrNotParticipant", err)
	}
}

func TestListForOrdersByActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherPatientUserID, otherPatientID := createUser(t, f.db, "Beatriz Vega", "vega@example.com", entuser.RolePatient)
	secondChatID := createChat(t, f.db, otherPatientID, f.psychID)

	if _, err := f.svc.SendMessage(ctx, f.chatID, f.patientUserID, "older"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if _, err := f.svc.SendMessage(ctx, secondChatID, otherPatientUserID, "newer"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	chats, err := f.svc.ListFor(ctx, f.psychUserID, string(entuser.RolePsychologist))
	if err != nil {
		t.Fatalf("ListFor() error = %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("len(chats) = %d, want 2", len(chats))
	}
	if chats[0].Chat.ID != secondChatID {
		t.Errorf("chats[0] = %s, want the chat with the latest message %s", chats[0].Chat.ID, secondChatID)
	}
	if chats[0].CounterpartName != "Beatriz Vega" {
		t.Errorf("chats[0].CounterpartName = %q, want Beatriz Vega", chats[0].CounterpartName)
	}
	if chats[1].CounterpartName != "Ana Morales" {
		t.Errorf("chats[1].CounterpartName = %q, want Ana Morales", chats[1].CounterpartName)
	}

	// The patient sees only their own chat.
	mine, err := f.svc.ListFor(ctx, f.patientUserID, string(entuser.RolePatient))
	if err != nil {
		t.Fatalf("ListFor() patient error = %v", err)
	}
	if len(mine) != 1 || mine[0].Chat.ID != f.chatID {
		t.Fatalf("patient chats = %d, want exactly their own chat", len(mine))
	}
}
