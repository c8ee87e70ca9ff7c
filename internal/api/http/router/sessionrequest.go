package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerSessionRequestRoutes(
	api fiber.Router,
	sh *handler.SessionRequestHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
	psychologistOnly fiber.Handler,
) {
	reqs := api.Group("/session-requests", authRequired)

	reqs.Post("/", patientOnly, sh.Create)
	reqs.Get("/mine", patientOnly, sh.Mine)
	reqs.Get("/pending", psychologistOnly, sh.Pending)
	reqs.Post("/:id/accept", psychologistOnly, sh.Accept)
	reqs.Post("/:id/reject", psychologistOnly, sh.Reject)
}
