package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	psychologistOnly fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, psychologistOnly)

	appts.Post("/", ah.Create)
	appts.Get("/", ah.Search)

	a := appts.Group("/:id")
	a.Get("/", ah.Get)
	a.Patch("/", ah.Update)
	a.Delete("/", ah.Cancel)
}
