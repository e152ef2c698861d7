package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nutrivida/nutrivida_backend/internal/service/media"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type MediaHandler struct {
	svc media.Service
}

func NewMediaHandler(svc media.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func mapMediaError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, media.ErrInvalidEntity),
		errors.Is(err, media.ErrInvalidContentType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /media/uploads
func (h *MediaHandler) RequestUpload(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Entity      string `json:"entity"`
		ContentType string `json:"content_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ticket, err := h.svc.RequestUpload(c.Context(), body.Entity, claims.UserID, body.ContentType)
	if err != nil {
		return mapMediaError(c, err)
	}
	return created(c, ticket)
}

// GET /media/download?key=...
func (h *MediaHandler) DownloadURL(c fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "key is required")
	}

	url, err := h.svc.DownloadURL(c.Context(), key)
	if err != nil {
		return mapMediaError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}
