package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerDirectoryRoutes(
	api fiber.Router,
	dh *handler.DirectoryHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
	psychologistOnly fiber.Handler,
) {
	api.Get("/psychologists", authRequired, dh.ListPsychologists)
	api.Get("/users/me", authRequired, dh.GetMe)

	api.Patch("/psychologists/me/visibility", authRequired, psychologistOnly, dh.SetVisibility)
	api.Patch("/patients/me/emotional-state", authRequired, patientOnly, dh.SetEmotionalState)
}
