package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerChecklistRoutes(
	api fiber.Router,
	ch *handler.ChecklistHandler,
	authRequired fiber.Handler,
	requireNutritionist fiber.Handler,
	requirePatient fiber.Handler,
) {
	// Habit catalogue (nutritionist manages, patients read the active set
	// through their daily checklist)
	habits := api.Group("/habits", authRequired, requireNutritionist)
	habits.Get("/", ch.ListHabits)
	habits.Post("/", ch.CreateHabit)
	habits.Patch("/:id", ch.UpdateHabit)
	habits.Delete("/:id", ch.DeleteHabit)

	checklist := api.Group("/checklist", authRequired, requirePatient)
	checklist.Get("/today", ch.Today)
	checklist.Put("/:habitID", ch.SetChecked)
}
