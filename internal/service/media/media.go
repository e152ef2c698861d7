package media

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutrivida/nutrivida_backend/pkg/s3"
)

// Entities media can be attached to; the entity becomes the key prefix.
var allowedEntities = map[string]struct{}{
	"avatar":  {},
	"diary":   {},
	"post":    {},
	"message": {},
	"content": {},
}

var allowedContentTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"application/pdf": "pdf",
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadTicket struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// RequestUpload mints an object key and a presigned PUT URL. The
	// client uploads directly; this backend never proxies media bytes.
	RequestUpload(ctx context.Context, entity string, ownerID uuid.UUID, contentType string) (*UploadTicket, error)

	// DownloadURL presigns a GET for an existing key.
	DownloadURL(ctx context.Context, key string) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type mediaService struct {
	store *s3.Client
}

func New(store *s3.Client) Service {
	return &mediaService{store: store}
}

func (s *mediaService) RequestUpload(ctx context.Context, entity string, ownerID uuid.UUID, contentType string) (*UploadTicket, error) {
	if _, ok := allowedEntities[entity]; !ok {
		return nil, ErrInvalidEntity
	}
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, ErrInvalidContentType
	}

	key := fmt.Sprintf("%s/%s/%s.%s", entity, ownerID.String(), uuid.Must(uuid.NewV7()).String(), ext)

	url, err := s.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &UploadTicket{Key: key, UploadURL: url}, nil
}

func (s *mediaService) DownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.store.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}
