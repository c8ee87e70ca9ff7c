package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/sessionrequest"
)

type SessionRequestHandler struct {
	svc sessionrequest.Service
}

func NewSessionRequestHandler(svc sessionrequest.Service) *SessionRequestHandler {
	return &SessionRequestHandler{svc: svc}
}

func mapSessionRequestError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, sessionrequest.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, sessionrequest.ErrPatientNotFound),
		errors.Is(err, sessionrequest.ErrPsychologistNotFound),
		errors.Is(err, sessionrequest.ErrPsychologistUnavailable):
		return notFound(c, err.Error())
	case errors.Is(err, sessionrequest.ErrDuplicateRequest),
		errors.Is(err, sessionrequest.ErrAlreadyProcessed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

type sessionRequestResponse struct {
	ID             string    `json:"id"`
	PsychologistID string    `json:"psychologist_id"`
	Status         string    `json:"status"`
	InitialMessage string    `json:"initial_message"`
	CreatedAt      time.Time `json:"created_at"`
}

func newSessionRequestResponse(sr *repo.SessionRequest) sessionRequestResponse {
	return sessionRequestResponse{
		ID:             sr.ID.String(),
		PsychologistID: sr.PsychologistID.String(),
		Status:         string(sr.Status),
		InitialMessage: sr.InitialMessage,
		CreatedAt:      sr.CreatedAt,
	}
}

// POST /session-requests
func (h *SessionRequestHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PsychologistID string `json:"psychologist_id"`
		InitialMessage string `json:"initial_message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	psychID, err := uuid.Parse(body.PsychologistID)
	if err != nil {
		return badRequest(c, "invalid psychologist_id")
	}
	if body.InitialMessage == "" {
		return badRequest(c, "initial_message is required")
	}

	sr, err := h.svc.Create(c.Context(), sessionrequest.CreateRequest{
		PatientUserID:  userID,
		PsychologistID: psychID,
		InitialMessage: body.InitialMessage,
	})
	if err != nil {
		return mapSessionRequestError(c, err)
	}
	return created(c, newSessionRequestResponse(sr))
}

// GET /session-requests/pending
func (h *SessionRequestHandler) Pending(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	pending, err := h.svc.GetPending(c.Context(), userID)
	if err != nil {
		return mapSessionRequestError(c, err)
	}

	type item struct {
		ID             string    `json:"id"`
		PatientName    string    `json:"patient_name"`
		InitialMessage string    `json:"initial_message"`
		CreatedAt      time.Time `json:"created_at"`
	}
	out := make([]item, 0, len(pending))
	for _, p := range pending {
		out = append(out, item{
			ID:             p.Request.ID.String(),
			PatientName:    p.PatientName,
			InitialMessage: p.Request.InitialMessage,
			CreatedAt:      p.Request.CreatedAt,
		})
	}
	return ok(c, out)
}

// GET /session-requests/mine
func (h *SessionRequestHandler) Mine(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reqs, err := h.svc.ListForPatient(c.Context(), userID)
	if err != nil {
		return mapSessionRequestError(c, err)
	}

	out := make([]sessionRequestResponse, 0, len(reqs))
	for _, sr := range reqs {
		out = append(out, newSessionRequestResponse(sr))
	}
	return ok(c, out)
}

// POST /session-requests/:id/accept
func (h *SessionRequestHandler) Accept(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	result, err := h.svc.Accept(c.Context(), userID, requestID)
	if err != nil {
		return mapSessionRequestError(c, err)
	}

	return ok(c, fiber.Map{
		"chat_id": result.Chat.ID.String(),
		"reused":  result.Reused,
	})
}

// POST /session-requests/:id/reject
func (h *SessionRequestHandler) Reject(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.Reject(c.Context(), userID, requestID); err != nil {
		return mapSessionRequestError(c, err)
	}
	return noContent(c)
}
