package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/diary"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type DiaryHandler struct {
	svc diary.Service
}

func NewDiaryHandler(svc diary.Service) *DiaryHandler {
	return &DiaryHandler{svc: svc}
}

func mapDiaryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diary.ErrEntryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diary.ErrEmptyDescription),
		errors.Is(err, diary.ErrInvalidMeal):
		return badRequest(c, err.Error())
	case errors.Is(err, diary.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /diary
func (h *DiaryHandler) CreateEntry(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Meal        string  `json:"meal"`
		Description string  `json:"description"`
		MediaKey    *string `json:"media_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.svc.CreateEntry(c.Context(), claims.UserID, diary.CreateEntryRequest{
		Meal:        body.Meal,
		Description: body.Description,
		MediaKey:    body.MediaKey,
	})
	if err != nil {
		return mapDiaryError(c, err)
	}
	return created(c, entry)
}

// DELETE /diary/:id
func (h *DiaryHandler) DeleteEntry(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.svc.DeleteEntry(c.Context(), claims.UserID, entryID); err != nil {
		return mapDiaryError(c, err)
	}
	return noContent(c)
}

// GET /diary?day=2025-07-14 (defaults to today)
func (h *DiaryHandler) ListDay(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	day := c.Query("day", time.Now().Format("2006-01-02"))

	entries, err := h.svc.ListDay(c.Context(), claims.UserID, day)
	if err != nil {
		return mapDiaryError(c, err)
	}
	return ok(c, entries)
}

// GET /patients/:id/diary?day=... (nutritionist)
func (h *DiaryHandler) ListPatientDay(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	day := c.Query("day", time.Now().Format("2006-01-02"))

	entries, err := h.svc.ListDay(c.Context(), patientID, day)
	if err != nil {
		return mapDiaryError(c, err)
	}
	return ok(c, entries)
}
