package community

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entpost "github.com/nutrivida/nutrivida_backend/internal/repo/post"
	entreaction "github.com/nutrivida/nutrivida_backend/internal/repo/postreaction"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePostRequest struct {
	Content  string
	MediaKey *string
}

type ListRequest struct {
	Page    int
	PerPage int
}

// FeedPost is a post with the viewer's like state.
type FeedPost struct {
	Post  *repo.Post `json:"post"`
	Liked bool       `json:"liked"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.Post, error)
	DeletePost(ctx context.Context, userID, postID uuid.UUID, isAdmin bool) error
	ListFeed(ctx context.Context, viewerID uuid.UUID, req ListRequest) ([]FeedPost, error)
	SetLiked(ctx context.Context, userID, postID uuid.UUID, liked bool) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type communityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &communityService{db: db}
}

func (s *communityService) CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*repo.Post, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	c := s.db.Post.Create().
		SetAuthorID(authorID).
		SetContent(content)
	if req.MediaKey != nil {
		c = c.SetMediaKey(*req.MediaKey)
	}

	post, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *communityService) DeletePost(ctx context.Context, userID, postID uuid.UUID, isAdmin bool) error {
	post, err := s.db.Post.Query().
		Where(entpost.ID(postID), entpost.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPostNotFound
		}
		return fmt.Errorf("get post: %w", err)
	}

	// authors remove their own posts, the nutritionist moderates any
	if post.AuthorID != userID && !isAdmin {
		return ErrNotAuthor
	}

	if err := s.db.Post.UpdateOneID(postID).
		SetDeletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *communityService) ListFeed(ctx context.Context, viewerID uuid.UUID, req ListRequest) ([]FeedPost, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	posts, err := s.db.Post.Query().
		Where(entpost.DeletedAtIsNil()).
		Order(entpost.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	reactions, err := s.db.PostReaction.Query().
		Where(entreaction.UserID(viewerID), entreaction.PostIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}
	liked := make(map[uuid.UUID]struct{}, len(reactions))
	for _, r := range reactions {
		liked[r.PostID] = struct{}{}
	}

	feed := make([]FeedPost, 0, len(posts))
	for _, p := range posts {
		_, ok := liked[p.ID]
		feed = append(feed, FeedPost{Post: p, Liked: ok})
	}
	return feed, nil
}

func (s *communityService) SetLiked(ctx context.Context, userID, postID uuid.UUID, liked bool) error {
	exists, err := s.db.Post.Query().
		Where(entpost.ID(postID), entpost.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return ErrPostNotFound
	}

	if liked {
		err := s.db.PostReaction.Create().
			SetPostID(postID).
			SetUserID(userID).
			Exec(ctx)
		if err != nil {
			if repo.IsConstraintError(err) {
				// already liked, keep the counter untouched
				return nil
			}
			return fmt.Errorf("create reaction: %w", err)
		}
		if err := s.db.Post.UpdateOneID(postID).
			AddLikeCount(1).
			Exec(ctx); err != nil {
			return fmt.Errorf("increment like count: %w", err)
		}
		return nil
	}

	deleted, err := s.db.PostReaction.Delete().
		Where(entreaction.PostID(postID), entreaction.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete reaction: %w", err)
	}
	if deleted > 0 {
		if err := s.db.Post.UpdateOneID(postID).
			AddLikeCount(-1).
			Exec(ctx); err != nil {
			return fmt.Errorf("decrement like count: %w", err)
		}
	}
	return nil
}
