package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/repo"
	"github.com/mindchat/mindchat_backend/internal/service/directory"
)

type DirectoryHandler struct {
	svc directory.Service
}

func NewDirectoryHandler(svc directory.Service) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

func mapDirectoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, directory.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, directory.ErrUserNotFound),
		errors.Is(err, directory.ErrPatientNotFound),
		errors.Is(err, directory.ErrPsychologistNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

type userResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func newUserResponse(u *repo.User) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

// POST /auth/register/patient
func (h *DirectoryHandler) RegisterPatient(c fiber.Ctx) error {
	var body struct {
		FullName       string  `json:"full_name"`
		Email          string  `json:"email"`
		Password       string  `json:"password"`
		EmotionalState *string `json:"emotional_state"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "full_name, email and password are required")
	}

	u, err := h.svc.RegisterPatient(c.Context(), directory.RegisterPatientRequest{
		FullName:       body.FullName,
		Email:          body.Email,
		Password:       body.Password,
		EmotionalState: body.EmotionalState,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, newUserResponse(u))
}

// POST /auth/register/psychologist
func (h *DirectoryHandler) RegisterPsychologist(c fiber.Ctx) error {
	var body struct {
		FullName            string   `json:"full_name"`
		Email               string   `json:"email"`
		Password            string   `json:"password"`
		ProfessionalLicense string   `json:"professional_license"`
		University          string   `json:"university"`
		GraduationYear      int      `json:"graduation_year"`
		Bio                 string   `json:"bio"`
		Tags                []string `json:"tags"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "full_name, email and password are required")
	}
	if body.ProfessionalLicense == "" {
		return badRequest(c, "professional_license is required")
	}

	u, err := h.svc.RegisterPsychologist(c.Context(), directory.RegisterPsychologistRequest{
		FullName:            body.FullName,
		Email:               body.Email,
		Password:            body.Password,
		ProfessionalLicense: body.ProfessionalLicense,
		University:          body.University,
		GraduationYear:      body.GraduationYear,
		Bio:                 body.Bio,
		Tags:                body.Tags,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, newUserResponse(u))
}

// GET /psychologists
func (h *DirectoryHandler) ListPsychologists(c fiber.Ctx) error {
	profiles, err := h.svc.VisiblePsychologists(c.Context())
	if err != nil {
		return mapDirectoryError(c, err)
	}

	type item struct {
		ID                  string   `json:"id"`
		FullName            string   `json:"full_name"`
		ProfessionalLicense string   `json:"professional_license"`
		University          *string  `json:"university"`
		GraduationYear      *int     `json:"graduation_year"`
		Bio                 *string  `json:"bio"`
		Tags                []string `json:"tags"`
	}
	out := make([]item, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, item{
			ID:                  p.Psychologist.ID.String(),
			FullName:            p.FullName,
			ProfessionalLicense: p.Psychologist.ProfessionalLicense,
			University:          p.Psychologist.University,
			GraduationYear:      p.Psychologist.GraduationYear,
			Bio:                 p.Psychologist.Bio,
			Tags:                p.Tags,
		})
	}
	return ok(c, out)
}

// GET /users/me
func (h *DirectoryHandler) GetMe(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.UserByID(c.Context(), userID)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, newUserResponse(u))
}

// PATCH /psychologists/me/visibility
func (h *DirectoryHandler) SetVisibility(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Visible *bool `json:"visible"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Visible == nil {
		return badRequest(c, "visible is required")
	}

	if err := h.svc.SetVisibility(c.Context(), userID, *body.Visible); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// PATCH /patients/me/emotional-state
func (h *DirectoryHandler) SetEmotionalState(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		EmotionalState string `json:"emotional_state"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetEmotionalState(c.Context(), userID, body.EmotionalState); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}
