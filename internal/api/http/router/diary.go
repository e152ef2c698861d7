package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerDiaryRoutes(
	api fiber.Router,
	dh *handler.DiaryHandler,
	authRequired fiber.Handler,
	requirePatient fiber.Handler,
) {
	diary := api.Group("/diary", authRequired, requirePatient)
	diary.Get("/", dh.ListDay)
	diary.Post("/", dh.CreateEntry)
	diary.Delete("/:id", dh.DeleteEntry)
}
