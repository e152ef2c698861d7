package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerMediaRoutes(
	api fiber.Router,
	mh *handler.MediaHandler,
	authRequired fiber.Handler,
) {
	media := api.Group("/media", authRequired)

	media.Post("/uploads", mh.RequestUpload)
	media.Get("/download", mh.DownloadURL)
}
