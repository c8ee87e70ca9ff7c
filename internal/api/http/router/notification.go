package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindchat/mindchat_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired)

	notifs.Get("/", nh.List)
	notifs.Get("/unread-count", nh.UnreadCount)
	notifs.Post("/read-all", nh.MarkAllRead)
	notifs.Post("/:id/read", nh.MarkRead)
}
