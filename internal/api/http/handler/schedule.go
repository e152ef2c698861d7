package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/booking"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type ScheduleHandler struct {
	svc booking.Service
}

func NewScheduleHandler(svc booking.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrSlotAlreadyBooked),
		errors.Is(err, booking.ErrInvalidSlot):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrAppointmentNotFound),
		errors.Is(err, booking.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidTimes):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Availability (nutritionist)
// ---------------------------------------------------------------------------

// GET /schedule/availability
func (h *ScheduleHandler) ListAvailability(c fiber.Ctx) error {
	days, err := h.svc.ListAvailability(c.Context())
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, days)
}

// PUT /schedule/availability/:date
func (h *ScheduleHandler) UpsertAvailability(c fiber.Ctx) error {
	var body struct {
		Times []string `json:"times"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.UpsertAvailability(c.Context(), c.Params("date"), body.Times); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Patient schedule views
// ---------------------------------------------------------------------------

// GET /schedule/slots/:date
func (h *ScheduleHandler) BookableSlots(c fiber.Ctx) error {
	slots, err := h.svc.BookableSlots(c.Context(), c.Params("date"))
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, slots)
}

// GET /schedule/month?year=2025&month=7
func (h *ScheduleHandler) MonthView(c fiber.Ctx) error {
	now := time.Now()
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return badRequest(c, "invalid year or month")
	}

	cells, err := h.svc.MonthView(c.Context(), year, time.Month(month))
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, cells)
}

// ---------------------------------------------------------------------------
// Booking lifecycle
// ---------------------------------------------------------------------------

// POST /schedule/appointments
func (h *ScheduleHandler) ConfirmBooking(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.ConfirmBooking(c.Context(), claims.UserID, booking.ConfirmBookingRequest{
		Date: body.Date,
		Time: body.Time,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return created(c, appt)
}

// DELETE /schedule/appointments/:id
func (h *ScheduleHandler) CancelAppointment(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.CancelAppointment(c.Context(), apptID); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// GET /schedule/appointments?from=...&to=... (nutritionist agenda)
func (h *ScheduleHandler) ListAppointments(c fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 1, 0)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "invalid from timestamp")
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "invalid to timestamp")
		}
		to = t
	}

	appts, err := h.svc.ListAppointments(c.Context(), from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, appts)
}

// GET /schedule/appointments/mine (patient)
func (h *ScheduleHandler) MyAppointments(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	appts, err := h.svc.PatientAppointments(c.Context(), claims.UserID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, appts)
}
