package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerGamificationRoutes(
	api fiber.Router,
	gh *handler.GamificationHandler,
	authRequired fiber.Handler,
	requirePatient fiber.Handler,
) {
	hydration := api.Group("/hydration", authRequired, requirePatient)
	hydration.Get("/today", gh.HydrationToday)
	hydration.Put("/intake", gh.RecordIntake)
	hydration.Put("/goal", gh.SetHydrationGoal)

	api.Get("/progress", authRequired, requirePatient, gh.Progress)
}
