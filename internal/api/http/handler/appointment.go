package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrChatNotFound),
		errors.Is(err, appointment.ErrPsychologistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotAssigned):
		return forbidden(c)
	case errors.Is(err, appointment.ErrTimeSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrScheduledInPast):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       *string   `json:"notes"`
	IsCancelled bool      `json:"is_cancelled"`
}

func newAppointmentResponse(a *repo.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID.String(),
		PatientID:   a.PatientID.String(),
		ScheduledAt: a.ScheduledAt,
		Notes:       a.Notes,
		IsCancelled: a.IsCancelled,
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ChatID      string    `json:"chat_id"`
		ScheduledAt time.Time `json:"scheduled_at"`
		Notes       string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	chatID, err := uuid.Parse(body.ChatID)
	if err != nil {
		return badRequest(c, "invalid chat_id")
	}
	if body.ScheduledAt.IsZero() {
		return badRequest(c, "scheduled_at is required")
	}

	appt, err := h.svc.CreateFromChat(c.Context(), userID, appointment.CreateFromChatRequest{
		ChatID:      chatID,
		ScheduledAt: body.ScheduledAt,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, newAppointmentResponse(appt))
}

// GET /appointments
func (h *AppointmentHandler) Search(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		PatientName      string `query:"patient_name"`
		From             string `query:"from"`
		To               string `query:"to"`
		IncludeCancelled bool   `query:"include_cancelled"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.SearchRequest{
		PatientName:      q.PatientName,
		IncludeCancelled: q.IncludeCancelled,
	}
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "invalid from timestamp")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "invalid to timestamp")
		}
		req.To = &t
	}

	entries, err := h.svc.Search(c.Context(), userID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	type item struct {
		appointmentResponse
		PatientName string `json:"patient_name"`
	}
	out := make([]item, 0, len(entries))
	for _, e := range entries {
		out = append(out, item{
			appointmentResponse: newAppointmentResponse(e.Appointment),
			PatientName:         e.PatientName,
		})
	}
	return ok(c, out)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Get(c.Context(), userID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, newAppointmentResponse(appt))
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		ScheduledAt *time.Time `json:"scheduled_at"`
		Notes       *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Update(c.Context(), userID, apptID, appointment.UpdateRequest{
		ScheduledAt: body.ScheduledAt,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, newAppointmentResponse(appt))
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), userID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
