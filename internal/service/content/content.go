package content

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutrivida/nutrivida_backend/internal/repo"
	entsetting "github.com/nutrivida/nutrivida_backend/internal/repo/appsetting"
)

// settingCacheTTL bounds staleness after an edit through another instance.
const settingCacheTTL = 5 * time.Minute

var reKey = regexp.MustCompile(`^[a-z0-9_.]{1,128}$`)

func redisKeySetting(key string) string { return "setting:" + key }

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Get reads one setting, Redis-cached.
	Get(ctx context.Context, key string) (string, error)

	// List returns every setting (the admin content screen).
	List(ctx context.Context) (map[string]string, error)

	// Set upserts a setting and invalidates its cache entry.
	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contentService struct {
	db  *repo.Client
	rdb *redis.Client
}

func New(db *repo.Client, rdb *redis.Client) Service {
	return &contentService{db: db, rdb: rdb}
}

func (s *contentService) Get(ctx context.Context, key string) (string, error) {
	if !reKey.MatchString(key) {
		return "", ErrInvalidKey
	}

	if cached, err := s.rdb.Get(ctx, redisKeySetting(key)).Result(); err == nil {
		return cached, nil
	}

	row, err := s.db.AppSetting.Query().
		Where(entsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get setting: %w", err)
	}

	s.rdb.Set(ctx, redisKeySetting(key), row.Value, settingCacheTTL)
	return row.Value, nil
}

func (s *contentService) List(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.AppSetting.Query().
		Order(entsetting.ByKey()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

func (s *contentService) Set(ctx context.Context, key, value string) error {
	if !reKey.MatchString(key) {
		return ErrInvalidKey
	}

	err := s.db.AppSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(entsetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}

	s.rdb.Del(ctx, redisKeySetting(key))
	return nil
}

func (s *contentService) Delete(ctx context.Context, key string) error {
	if !reKey.MatchString(key) {
		return ErrInvalidKey
	}

	deleted, err := s.db.AppSetting.Delete().
		Where(entsetting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	s.rdb.Del(ctx, redisKeySetting(key))
	return nil
}
