package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/service/content"
)

type ContentHandler struct {
	svc content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func mapContentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, content.ErrInvalidKey):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /content/:key (any authenticated user)
func (h *ContentHandler) Get(c fiber.Ctx) error {
	value, err := h.svc.Get(c.Context(), c.Params("key"))
	if err != nil {
		return mapContentError(c, err)
	}
	return ok(c, fiber.Map{"key": c.Params("key"), "value": value})
}

// GET /content (nutritionist content screen)
func (h *ContentHandler) List(c fiber.Ctx) error {
	settings, err := h.svc.List(c.Context())
	if err != nil {
		return mapContentError(c, err)
	}
	return ok(c, settings)
}

// PUT /content/:key
func (h *ContentHandler) Set(c fiber.Ctx) error {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Set(c.Context(), c.Params("key"), body.Value); err != nil {
		return mapContentError(c, err)
	}
	return noContent(c)
}

// DELETE /content/:key
func (h *ContentHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("key")); err != nil {
		return mapContentError(c, err)
	}
	return noContent(c)
}
