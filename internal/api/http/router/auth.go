package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(
	api fiber.Router,
	ah *handler.AuthHandler,
	dh *handler.DirectoryHandler,
	authRequired fiber.Handler,
) {
	a := api.Group("/auth")

	a.Post("/register/patient", dh.RegisterPatient)
	a.Post("/register/psychologist", dh.RegisterPsychologist)
	a.Post("/login", ah.Login)
	a.Post("/refresh", ah.Refresh)
	a.Post("/logout", authRequired, ah.Logout)
}
