package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerConversationRoutes(
	api fiber.Router,
	ch *handler.ConversationHandler,
	authRequired fiber.Handler,
	requireNutritionist fiber.Handler,
	requirePatient fiber.Handler,
) {
	convs := api.Group("/conversations", authRequired)

	convs.Get("/", requireNutritionist, ch.Inbox)
	convs.Get("/mine", requirePatient, ch.Mine)
	convs.Get("/:id/messages", ch.ListMessages)
	convs.Post("/:id/messages", ch.SendMessage)
	convs.Post("/:id/read", ch.MarkRead)
}
