package handler

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
)

func TestAppointmentResponseOptionalNotes(t *testing.T) {
	notes := "bring the intake form"

	tests := []struct {
		name  string
		notes *string
		want  string
	}{
		{"absent notes serialize as null", nil, `"notes":null`},
		{"present notes pass through", &notes, `"notes":"bring the intake form"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &repo.Appointment{
				ID:          uuid.New(),
				PatientID:   uuid.New(),
				ScheduledAt: time.Now(),
				Notes:       tt.notes,
			}
			data, err := json.Marshal(newAppointmentResponse(a))
			if err != nil {
				t.Fatalf("marshal response: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("response %s does not contain %s", data, tt.want)
			}
		})
	}
}
