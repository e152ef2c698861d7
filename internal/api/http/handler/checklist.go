package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/checklist"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type ChecklistHandler struct {
	svc checklist.Service
}

func NewChecklistHandler(svc checklist.Service) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

func mapChecklistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checklist.ErrHabitNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, checklist.ErrEmptyTitle):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Habit management (nutritionist)
// ---------------------------------------------------------------------------

// GET /habits
func (h *ChecklistHandler) ListHabits(c fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"

	habits, err := h.svc.ListHabits(c.Context(), includeInactive)
	if err != nil {
		return mapChecklistError(c, err)
	}
	return ok(c, habits)
}

// POST /habits
func (h *ChecklistHandler) CreateHabit(c fiber.Ctx) error {
	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Position    int     `json:"position"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	habit, err := h.svc.CreateHabit(c.Context(), checklist.CreateHabitRequest{
		Title:       body.Title,
		Description: body.Description,
		Position:    body.Position,
	})
	if err != nil {
		return mapChecklistError(c, err)
	}
	return created(c, habit)
}

// PATCH /habits/:id
func (h *ChecklistHandler) UpdateHabit(c fiber.Ctx) error {
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Position    *int    `json:"position"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	habit, err := h.svc.UpdateHabit(c.Context(), habitID, checklist.UpdateHabitRequest{
		Title:       body.Title,
		Description: body.Description,
		Position:    body.Position,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapChecklistError(c, err)
	}
	return ok(c, habit)
}

// DELETE /habits/:id
func (h *ChecklistHandler) DeleteHabit(c fiber.Ctx) error {
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	if err := h.svc.DeleteHabit(c.Context(), habitID); err != nil {
		return mapChecklistError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Patient checklist
// ---------------------------------------------------------------------------

// GET /checklist/today
func (h *ChecklistHandler) Today(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	items, err := h.svc.Today(c.Context(), claims.UserID)
	if err != nil {
		return mapChecklistError(c, err)
	}
	return ok(c, items)
}

// PUT /checklist/:habitID
func (h *ChecklistHandler) SetChecked(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	habitID, err := uuid.Parse(c.Params("habitID"))
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	var body struct {
		Checked bool `json:"checked"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetChecked(c.Context(), claims.UserID, habitID, body.Checked); err != nil {
		return mapChecklistError(c, err)
	}
	return noContent(c)
}
