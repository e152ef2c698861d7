package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerContentRoutes(
	api fiber.Router,
	ch *handler.ContentHandler,
	authRequired fiber.Handler,
	requireNutritionist fiber.Handler,
) {
	content := api.Group("/content", authRequired)

	content.Get("/", requireNutritionist, ch.List)
	content.Get("/:key", ch.Get)
	content.Put("/:key", requireNutritionist, ch.Set)
	content.Delete("/:key", requireNutritionist, ch.Delete)
}
