package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/mindchat/mindchat_backend/internal/events"
	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/notification"
	"github.com/mindchat/mindchat_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Mailer   *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc, p.Mailer)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// startNotificationWorker turns realtime events into durable notification
// rows, so a user who was offline still finds them in the feed. Hub
// delivery over websockets stays fire-and-forget.
func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client) {
	_, err := nc.Subscribe(events.SubjectRequestCreatedPrefix+">", func(msg *nats.Msg) {
		var ev events.ChatRequestEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		_, err := notifSvc.Create(context.Background(), notification.CreateRequest{
			UserID: ev.PsychologistUserID,
			Type:   notification.TypeChatRequest,
			Title:  "New chat request from " + ev.PatientName,
			Data: map[string]any{
				"session_request_id": ev.SessionRequestID.String(),
				"patient_name":       ev.PatientName,
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create request notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe request.created failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectRequestRespondedPrefix+">", func(msg *nats.Msg) {
		var ev events.ChatRequestResponseEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		title := ev.PsychologistName + " declined your chat request"
		if ev.Accepted {
			title = ev.PsychologistName + " accepted your chat request"
		}
		data := map[string]any{
			"session_request_id": ev.SessionRequestID.String(),
			"accepted":           ev.Accepted,
		}
		if ev.ChatID != nil {
			data["chat_id"] = ev.ChatID.String()
		}

		ctx := context.Background()
		_, err := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: ev.PatientUserID,
			Type:   notification.TypeChatRequestResponse,
			Title:  title,
			Data:   data,
		})
		if err != nil {
			slog.Warn("notification_worker: create response notification failed", "err", err)
		}

		if ev.Accepted {
			sendAcceptedEmail(ctx, db, mailer, ev)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe request.responded failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectMessageNewPrefix+">", func(msg *nats.Msg) {
		var ev events.MessageEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return
		}

		ctx := context.Background()
		recipientID, err := messageRecipient(ctx, db, ev)
		if err != nil {
			slog.Warn("notification_worker: resolve recipient failed", "chat_id", ev.ChatID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: recipientID,
			Type:   notification.TypeNewMessage,
			Title:  "New message from " + ev.SenderName,
			Data: map[string]any{
				"chat_id":    ev.ChatID.String(),
				"message_id": ev.MessageID.String(),
			},
		})
		if err != nil {
			slog.Warn("notification_worker: create message notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe message.new failed", "err", err)
	}
}

// messageRecipient resolves the chat party that did not send the message.
func messageRecipient(ctx context.Context, db *repo.Client, ev events.MessageEvent) (uuid.UUID, error) {
	c, err := db.Chat.Get(ctx, ev.ChatID)
	if err != nil {
		return uuid.Nil, err
	}
	sr, err := db.SessionRequest.Get(ctx, c.SessionRequestID)
	if err != nil {
		return uuid.Nil, err
	}
	patient, err := db.Patient.Get(ctx, sr.PatientID)
	if err != nil {
		return uuid.Nil, err
	}
	psych, err := db.Psychologist.Get(ctx, sr.PsychologistID)
	if err != nil {
		return uuid.Nil, err
	}

	if ev.SenderUserID == patient.UserID {
		return psych.UserID, nil
	}
	return patient.UserID, nil
}

func sendAcceptedEmail(ctx context.Context, db *repo.Client, mailer *email.Client, ev events.ChatRequestResponseEvent) {
	if mailer == nil || !mailer.Enabled() {
		return
	}
	patient, err := db.User.Get(ctx, ev.PatientUserID)
	if err != nil {
		return
	}
	m := email.BuildRequestAcceptedEmail(patient.Email, patient.FullName, ev.PsychologistName)
	if err := mailer.Send(ctx, m); err != nil {
		slog.Warn("notification_worker: accepted email failed", "user_id", patient.ID, "err", err)
	}
}
