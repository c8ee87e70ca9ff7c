package ws

import (
	"time"

	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/events"
)

// Client → server actions.
const (
	ActionJoinChat    = "join_chat"
	ActionLeaveChat   = "leave_chat"
	ActionSendMessage = "send_message"
)

// Server → client event names. They match what the web client listens on.
const (
	EventReceiveMessage             = "ReceiveMessage"
	EventError                      = "Error"
	EventReceiveChatRequest         = "ReceiveChatRequest"
	EventReceiveChatRequestResponse = "ReceiveChatRequestResponse"
)

// ClientMessage is a frame sent by the browser.
type ClientMessage struct {
	Action  string    `json:"action"`
	ChatID  uuid.UUID `json:"chat_id"`
	Message string    `json:"message,omitempty"`
}

// ServerEvent is a frame pushed to the browser.
type ServerEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type receiveMessagePayload struct {
	ChatID     uuid.UUID `json:"chatId"`
	Message    string    `json:"message"`
	SenderName string    `json:"senderName"`
	Time       string    `json:"time"` // wall-clock "HH:mm"
}

type chatRequestPayload struct {
	SessionRequestID uuid.UUID `json:"sessionRequestId"`
	PatientName      string    `json:"patientName"`
	InitialMessage   string    `json:"initialMessage"`
	Timestamp        time.Time `json:"timestamp"`
}

type chatRequestResponsePayload struct {
	SessionRequestID uuid.UUID  `json:"sessionRequestId"`
	Accepted         bool       `json:"accepted"`
	PsychologistName string     `json:"psychologistName"`
	ChatID           *uuid.UUID `json:"chatId,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// NewReceiveMessage converts a stored-message event into the wire frame.
func NewReceiveMessage(ev events.MessageEvent) ServerEvent {
	return ServerEvent{
		Event: EventReceiveMessage,
		Payload: receiveMessagePayload{
			ChatID:     ev.ChatID,
			Message:    ev.Body,
			SenderName: ev.SenderName,
			Time:       ev.SentAt.Local().Format("15:04"),
		},
	}
}

func NewChatRequest(ev events.ChatRequestEvent) ServerEvent {
	return ServerEvent{
		Event: EventReceiveChatRequest,
		Payload: chatRequestPayload{
			SessionRequestID: ev.SessionRequestID,
			PatientName:      ev.PatientName,
			InitialMessage:   ev.InitialMessage,
			Timestamp:        ev.Timestamp,
		},
	}
}

func NewChatRequestResponse(ev events.ChatRequestResponseEvent) ServerEvent {
	return ServerEvent{
		Event: EventReceiveChatRequestResponse,
		Payload: chatRequestResponsePayload{
			SessionRequestID: ev.SessionRequestID,
			Accepted:         ev.Accepted,
			PsychologistName: ev.PsychologistName,
			ChatID:           ev.ChatID,
			Timestamp:        ev.Timestamp,
		},
	}
}

// NewError is only ever sent to the client that caused it.
func NewError(msg string) ServerEvent {
	return ServerEvent{
		Event:   EventError,
		Payload: errorPayload{Message: msg},
	}
}
