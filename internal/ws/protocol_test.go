package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/events"
)

func TestNewReceiveMessage(t *testing.T) {
	sentAt := time.Date(2025, 3, 14, 9, 5, 30, 0, time.Local)
	ev := events.MessageEvent{
		ChatID:     uuid.New(),
		MessageID:  uuid.New(),
		SenderName: "Dana Rowe",
		Body:       "hello there",
		SentAt:     sentAt,
	}

	frame := NewReceiveMessage(ev)
	if frame.Event != EventReceiveMessage {
		t.Fatalf("Event = %q, want %q", frame.Event, EventReceiveMessage)
	}

	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Event   string `json:"event"`
		Payload struct {
			ChatID     string `json:"chatId"`
			Message    string `json:"message"`
			SenderName string `json:"senderName"`
			Time       string `json:"time"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Payload.ChatID != ev.ChatID.String() {
		t.Errorf("chatId = %q, want %q", decoded.Payload.ChatID, ev.ChatID)
	}
	if decoded.Payload.Message != "hello there" {
		t.Errorf("message = %q", decoded.Payload.Message)
	}
	if decoded.Payload.SenderName != "Dana Rowe" {
		t.Errorf("senderName = %q", decoded.Payload.SenderName)
	}
	if decoded.Payload.Time != "09:05" {
		t.Errorf("time = %q, want 09:05", decoded.Payload.Time)
	}
}

func TestNewChatRequestResponseOmitsNilChat(t *testing.T) {
	frame := NewChatRequestResponse(events.ChatRequestResponseEvent{
		SessionRequestID: uuid.New(),
		Accepted:         false,
		PsychologistName: "Dr. Chen",
		Timestamp:        time.Now(),
	})

	data, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var payload map[string]any
	raw := struct {
		Payload json.RawMessage `json:"payload"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := json.Unmarshal(raw.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if _, present := payload["chatId"]; present {
		t.Error("chatId should be omitted when no chat was created")
	}
	if payload["accepted"] != false {
		t.Errorf("accepted = %v, want false", payload["accepted"])
	}
}

func TestSubjectID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		subject string
		want    uuid.UUID
		ok      bool
	}{
		{"request created", events.SubjectRequestCreated(id), id, true},
		{"message new", events.SubjectMessageNew(id), id, true},
		{"no separator", "plainsubject", uuid.Nil, false},
		{"trailing garbage", "mindchat.message.new.not-a-uuid", uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := subjectID(tt.subject)
			if ok != tt.ok || got != tt.want {
				t.Errorf("subjectID(%q) = (%v, %v), want (%v, %v)", tt.subject, got, ok, tt.want, tt.ok)
			}
		})
	}
}
