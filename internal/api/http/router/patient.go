package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	ah *handler.AnamnesisHandler,
	gh *handler.GamificationHandler,
	dh *handler.DiaryHandler,
	authRequired fiber.Handler,
	requireNutritionist fiber.Handler,
) {
	// Own profile
	me := api.Group("/me", authRequired)
	me.Get("/", ph.Me)
	me.Patch("/", ph.UpdateMe)

	// Own questionnaire
	api.Post("/anamnesis", authRequired, ah.Submit)
	api.Get("/anamnesis", authRequired, ah.GetMine)

	// Nutritionist roster and per-patient views
	patients := api.Group("/patients", authRequired, requireNutritionist)
	patients.Get("/", ph.List)
	patients.Get("/:id", ph.Get)
	patients.Get("/:id/anamnesis", ah.GetForPatient)
	patients.Get("/:id/progress", gh.PatientProgress)
	patients.Get("/:id/diary", dh.ListPatientDay)
}
