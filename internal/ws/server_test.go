package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindchat/mindchat_backend/internal/repo/enttest"
	entsr "github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
	entuser "github.com/mindchat/mindchat_backend/internal/repo/user"
	"github.com/mindchat/mindchat_backend/internal/service/chat"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
	"github.com/mindchat/mindchat_backend/pkg/util/password"
)

// newReplayFixture stores an accepted request, its chat, and total messages,
// and returns a server wired to sqlite-backed services.
func newReplayFixture(t *testing.T, total int) (*Server, uuid.UUID, uuid.UUID) {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	patient, err := db.User.Create().
		SetFullName("Ana Morales").
		SetEmail("ana@example.com").
		SetPasswordHash("irrelevant").
		SetRole(entuser.RolePatient).
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient user: %v", err)
	}
	patientProfile, err := db.Patient.Create().SetUserID(patient.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create patient profile: %v", err)
	}

	psych, err := db.User.Create().
		SetFullName("Laura Ruiz").
		SetEmail("ruiz@example.com").
		SetPasswordHash("irrelevant").
		SetRole(entuser.RolePsychologist).
		Save(ctx)
	if err != nil {
		t.Fatalf("create psychologist user: %v", err)
	}
	psychProfile, err := db.Psychologist.Create().
		SetUserID(psych.ID).
		SetProfessionalLicense("PSY-001").
		Save(ctx)
	if err != nil {
		t.Fatalf("create psychologist profile: %v", err)
	}

	sr, err := db.SessionRequest.Create().
		SetPatientID(patientProfile.ID).
		SetPsychologistID(psychProfile.ID).
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

	chats := chat.New(db, nil)
	for i := 1; i <= total; i++ {
		if _, err := chats.SendMessage(ctx, c.ID, patient.ID, fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("store message %d: %v", i, err)
		}
	}

	s := &Server{
		hub:   NewHub(),
		chats: chats,
		users: directory.New(db, nil, password.DefaultParams()),
	}
	return s, c.ID, patient.ID
}

func TestReplayHistorySendsEveryMessage(t *testing.T) {
	const total = 230 // spans two full pages and a remainder

	s, chatID, patientUserID := newReplayFixture(t, total)
	c := newClient(s.hub, nil, patientUserID, "patient", clientOptions{sendBuffer: total + 10})

	s.replayHistory(context.Background(), c, chatID)

	var bodies []string
	for {
		select {
		case data := <-c.send:
			var ev struct {
				Event   string `json:"event"`
				Payload struct {
					Message string `json:"message"`
				} `json:"payload"`
			}
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("unmarshal frame: %v", err)
			}
			if ev.Event != EventReceiveMessage {
				t.Fatalf("event = %q, want %q", ev.Event, EventReceiveMessage)
			}
			bodies = append(bodies, ev.Payload.Message)
		default:
			if len(bodies) != total {
				t.Fatalf("replayed %d messages, want %d", len(bodies), total)
			}
			if bodies[0] != "msg 1" || bodies[total-1] != fmt.Sprintf("msg %d", total) {
				t.Fatalf("replay out of order: first %q last %q", bodies[0], bodies[total-1])
			}
			return
		}
	}
}
