package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/service/community"
	pasetotoken "github.com/nutrivida/nutrivida_backend/pkg/paseto"
)

type CommunityHandler struct {
	svc community.Service
}

func NewCommunityHandler(svc community.Service) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func mapCommunityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, community.ErrPostNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, community.ErrEmptyContent):
		return badRequest(c, err.Error())
	case errors.Is(err, community.ErrNotAuthor):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /community/posts
func (h *CommunityHandler) CreatePost(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Content  string  `json:"content"`
		MediaKey *string `json:"media_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	post, err := h.svc.CreatePost(c.Context(), claims.UserID, community.CreatePostRequest{
		Content:  body.Content,
		MediaKey: body.MediaKey,
	})
	if err != nil {
		return mapCommunityError(c, err)
	}
	return created(c, post)
}

// DELETE /community/posts/:id (author, or the nutritionist moderating)
func (h *CommunityHandler) DeletePost(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	isAdmin := claims.Role == pasetotoken.RoleNutritionist
	if err := h.svc.DeletePost(c.Context(), claims.UserID, postID, isAdmin); err != nil {
		return mapCommunityError(c, err)
	}
	return noContent(c)
}

// GET /community/feed
func (h *CommunityHandler) Feed(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	page, perPage := pageParams(c)
	posts, err := h.svc.ListFeed(c.Context(), claims.UserID, community.ListRequest{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return mapCommunityError(c, err)
	}
	return ok(c, posts)
}

// PUT /community/posts/:id/like
func (h *CommunityHandler) SetLiked(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body struct {
		Liked bool `json:"liked"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetLiked(c.Context(), claims.UserID, postID, body.Liked); err != nil {
		return mapCommunityError(c, err)
	}
	return noContent(c)
}
