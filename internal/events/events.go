// Package events defines the NATS subjects and payloads exchanged between
// services, the realtime hub, and background workers.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SubjectRequestCreatedPrefix is followed by the psychologist's user ID.
	SubjectRequestCreatedPrefix = "mindchat.request.created."
	// SubjectRequestRespondedPrefix is followed by the patient's user ID.
	SubjectRequestRespondedPrefix = "mindchat.request.responded."
	// SubjectMessageNewPrefix is followed by the chat ID.
	SubjectMessageNewPrefix = "mindchat.message.new."
)

// SubjectRequestCreated returns the subject for new session requests
// addressed to a psychologist.
func SubjectRequestCreated(psychUserID uuid.UUID) string {
	return SubjectRequestCreatedPrefix + psychUserID.String()
}

// SubjectRequestResponded returns the subject for accept/reject decisions
// addressed to the requesting patient.
func SubjectRequestResponded(patientUserID uuid.UUID) string {
	return SubjectRequestRespondedPrefix + patientUserID.String()
}

// SubjectMessageNew returns the subject for new messages in a chat.
func SubjectMessageNew(chatID uuid.UUID) string {
	return SubjectMessageNewPrefix + chatID.String()
}

// ChatRequestEvent is published when a patient creates a session request.
type ChatRequestEvent struct {
	SessionRequestID   uuid.UUID `json:"session_request_id"`
	PatientUserID      uuid.UUID `json:"patient_user_id"`
	PsychologistUserID uuid.UUID `json:"psychologist_user_id"`
	PatientName        string    `json:"patient_name"`
	InitialMessage     string    `json:"initial_message"`
	Timestamp          time.Time `json:"timestamp"`
}

// ChatRequestResponseEvent is published when a psychologist accepts or
// rejects a session request.
type ChatRequestResponseEvent struct {
	SessionRequestID   uuid.UUID  `json:"session_request_id"`
	PatientUserID      uuid.UUID  `json:"patient_user_id"`
	PsychologistUserID uuid.UUID  `json:"psychologist_user_id"`
	Accepted           bool       `json:"accepted"`
	PsychologistName   string     `json:"psychologist_name"`
	ChatID             *uuid.UUID `json:"chat_id,omitempty"`
	Timestamp          time.Time  `json:"timestamp"`
}

// MessageEvent is published when a message is stored in a chat.
type MessageEvent struct {
	ChatID       uuid.UUID `json:"chat_id"`
	MessageID    uuid.UUID `json:"message_id"`
	SenderUserID uuid.UUID `json:"sender_user_id"`
	SenderName   string    `json:"sender_name"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}
