package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSubjects(t *testing.T) {
	id := uuid.MustParse("0191b9a7-0000-7000-8000-000000000042")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"request created", SubjectRequestCreated(id), "mindchat.request.created." + id.String()},
		{"request responded", SubjectRequestResponded(id), "mindchat.request.responded." + id.String()},
		{"message new", SubjectMessageNew(id), "mindchat.message.new." + id.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("subject = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestChatRequestResponseEventRoundTrip(t *testing.T) {
	chatID := uuid.New()
	ev := ChatRequestResponseEvent{
		SessionRequestID:   uuid.New(),
		PatientUserID:      uuid.New(),
		PsychologistUserID: uuid.New(),
		Accepted:           true,
		PsychologistName:   "Dr. Ortiz",
		ChatID:             &chatID,
		Timestamp:          time.Now().UTC().Truncate(time.Second),
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got ChatRequestResponseEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.SessionRequestID != ev.SessionRequestID || !got.Accepted || got.ChatID == nil || *got.ChatID != chatID {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, ev.Timestamp)
	}
}
