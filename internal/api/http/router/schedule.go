package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requireNutritionist fiber.Handler,
	requirePatient fiber.Handler,
) {
	schedule := api.Group("/schedule", authRequired)

	// Availability management (nutritionist)
	schedule.Get("/availability", requireNutritionist, sh.ListAvailability)
	schedule.Put("/availability/:date", requireNutritionist, sh.UpsertAvailability)

	// Patient-facing views
	schedule.Get("/slots/:date", sh.BookableSlots)
	schedule.Get("/month", sh.MonthView)

	// Booking lifecycle
	schedule.Post("/appointments", requirePatient, sh.ConfirmBooking)
	schedule.Get("/appointments", requireNutritionist, sh.ListAppointments)
	schedule.Get("/appointments/mine", requirePatient, sh.MyAppointments)
	schedule.Delete("/appointments/:id", requireNutritionist, sh.CancelAppointment)
}
