package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/gamification"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type GamificationHandler struct {
	svc gamification.Service
}

func NewGamificationHandler(svc gamification.Service) *GamificationHandler {
	return &GamificationHandler{svc: svc}
}

func mapGamificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gamification.ErrInvalidGoal):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /hydration/today
func (h *GamificationHandler) HydrationToday(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	day, err := h.svc.HydrationToday(c.Context(), claims.UserID)
	if err != nil {
		return mapGamificationError(c, err)
	}
	return ok(c, day)
}

// PUT /hydration/intake
func (h *GamificationHandler) RecordIntake(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		IntakeML int `json:"intake_ml"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	day, err := h.svc.RecordIntake(c.Context(), claims.UserID, body.IntakeML)
	if err != nil {
		return mapGamificationError(c, err)
	}
	return ok(c, day)
}

// PUT /hydration/goal
func (h *GamificationHandler) SetHydrationGoal(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		GoalML int `json:"goal_ml"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	day, err := h.svc.SetHydrationGoal(c.Context(), claims.UserID, body.GoalML)
	if err != nil {
		return mapGamificationError(c, err)
	}
	return ok(c, day)
}

// GET /progress (patient rewards screen)
func (h *GamificationHandler) Progress(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	progress, err := h.svc.GetProgress(c.Context(), claims.UserID)
	if err != nil {
		return mapGamificationError(c, err)
	}
	return ok(c, progress)
}

// GET /patients/:id/progress (nutritionist)
func (h *GamificationHandler) PatientProgress(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	progress, err := h.svc.GetProgress(c.Context(), patientID)
	if err != nil {
		return mapGamificationError(c, err)
	}
	return ok(c, progress)
}
