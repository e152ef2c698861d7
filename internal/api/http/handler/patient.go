package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/patient"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pageParams(c fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// GET /me
func (h *PatientHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, u)
}

// PATCH /me
func (h *PatientHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		AvatarKey *string `json:"avatar_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.UserID, patient.UpdateProfileRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		AvatarKey: body.AvatarKey,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, u)
}

// GET /patients (nutritionist roster)
func (h *PatientHandler) List(c fiber.Ctx) error {
	page, perPage := pageParams(c)

	users, total, err := h.svc.List(c.Context(), patient.ListRequest{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients": users,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	u, err := h.svc.Get(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, u)
}
