package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/conversation"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type ConversationHandler struct {
	svc conversation.Service
}

func NewConversationHandler(svc conversation.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func mapConversationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrConversationNotFound),
		errors.Is(err, conversation.ErrMessageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conversation.ErrNotParticipant):
		return forbidden(c)
	case errors.Is(err, conversation.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// authorize resolves the caller's claims and checks thread access in one go.
func (h *ConversationHandler) authorize(c fiber.Ctx) (*pasetotoken.Claims, uuid.UUID, error) {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return nil, uuid.Nil, unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, badRequest(c, "invalid conversation id")
	}

	isAdmin := claims.Role == pasetotoken.RoleNutritionist
	if err := h.svc.Authorize(c.Context(), convID, claims.UserID, isAdmin); err != nil {
		return nil, uuid.Nil, mapConversationError(c, err)
	}
	return claims, convID, nil
}

// GET /conversations/mine (patient thread, created on first use)
func (h *ConversationHandler) Mine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	conv, err := h.svc.GetOrCreate(c.Context(), claims.UserID)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, conv)
}

// GET /conversations (nutritionist inbox)
func (h *ConversationHandler) Inbox(c fiber.Ctx) error {
	convs, err := h.svc.Inbox(c.Context())
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, convs)
}

// GET /conversations/:id/messages
func (h *ConversationHandler) ListMessages(c fiber.Ctx) error {
	_, convID, err := h.authorize(c)
	if err != nil {
		return err
	}

	page, perPage := pageParams(c)
	msgs, err := h.svc.ListMessages(c.Context(), convID, conversation.ListMessagesRequest{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, msgs)
}

// POST /conversations/:id/messages
func (h *ConversationHandler) SendMessage(c fiber.Ctx) error {
	claims, convID, err := h.authorize(c)
	if err != nil {
		return err
	}

	var body struct {
		Content  *string `json:"content"`
		MediaKey *string `json:"media_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), convID, conversation.SendMessageRequest{
		SenderID: claims.UserID,
		Content:  body.Content,
		MediaKey: body.MediaKey,
	})
	if err != nil {
		return mapConversationError(c, err)
	}
	return created(c, msg)
}

// POST /conversations/:id/read
func (h *ConversationHandler) MarkRead(c fiber.Ctx) error {
	claims, convID, err := h.authorize(c)
	if err != nil {
		return err
	}

	if err := h.svc.MarkRead(c.Context(), convID, claims.UserID); err != nil {
		return mapConversationError(c, err)
	}
	return noContent(c)
}
