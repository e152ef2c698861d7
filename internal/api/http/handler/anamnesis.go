package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/anamnesis"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type AnamnesisHandler struct {
	svc anamnesis.Service
}

func NewAnamnesisHandler(svc anamnesis.Service) *AnamnesisHandler {
	return &AnamnesisHandler{svc: svc}
}

func mapAnamnesisError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, anamnesis.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, anamnesis.ErrEmptyPayload):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /anamnesis (patient submits or resubmits their own form)
func (h *AnamnesisHandler) Submit(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Answers map[string]any `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Submit(c.Context(), claims.UserID, body.Answers); err != nil {
		return mapAnamnesisError(c, err)
	}

	return noContent(c)
}

// GET /anamnesis (patient reads their own form)
func (h *AnamnesisHandler) GetMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	form, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return mapAnamnesisError(c, err)
	}

	return ok(c, form)
}

// GET /patients/:id/anamnesis (nutritionist)
func (h *AnamnesisHandler) GetForPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	form, err := h.svc.Get(c.Context(), patientID)
	if err != nil {
		return mapAnamnesisError(c, err)
	}

	return ok(c, form)
}
