package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerCommunityRoutes(
	api fiber.Router,
	ch *handler.CommunityHandler,
	authRequired fiber.Handler,
) {
	community := api.Group("/community", authRequired)

	community.Get("/feed", ch.Feed)
	community.Post("/posts", ch.CreatePost)
	community.Delete("/posts/:id", ch.DeletePost)
	community.Put("/posts/:id/like", ch.SetLiked)
}
