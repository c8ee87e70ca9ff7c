package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(
	api fiber.Router,
	ch *handler.ChatHandler,
	authRequired fiber.Handler,
) {
	chats := api.Group("/chats", authRequired)

	chats.Get("/", ch.List)

	c := chats.Group("/:id")
	c.Get("/messages", ch.History)
	c.Post("/messages", ch.SendMessage)
	c.Post("/close", ch.Close)
}
