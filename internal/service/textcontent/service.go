package textcontent

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/repository"
)

var ErrMissingKey = errors.New("key is required")

const (
	cacheKey = "text-content:all"
	cacheTTL = 5 * time.Minute
)

type Service interface {
	List(ctx context.Context) ([]domain.TextContent, error)
	GetByKey(ctx context.Context, key string) (*domain.TextContent, error)
	Upsert(ctx context.Context, update domain.TextContentUpdate) (*domain.TextContent, error)
	UpsertMany(ctx context.Context, updates []domain.TextContentUpdate) ([]domain.TextContent, error)
}

type service struct {
	textContentRepo repository.TextContentRepository
	redis           *redis.Client
}

func NewService(textContentRepo repository.TextContentRepository, redis *redis.Client) Service {
	return &service{
		textContentRepo: textContentRepo,
		redis:           redis,
	}
}

func (s *service) List(ctx context.Context) ([]domain.TextContent, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var entries []domain.TextContent
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.textContentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, cacheTTL).Err()
		}
	}

	return entries, nil
}

func (s *service) GetByKey(ctx context.Context, key string) (*domain.TextContent, error) {
	return s.textContentRepo.GetByKey(ctx, key)
}

func (s *service) Upsert(ctx context.Context, update domain.TextContentUpdate) (*domain.TextContent, error) {
	if update.Key == "" {
		return nil, ErrMissingKey
	}

	entry, err := s.textContentRepo.Upsert(ctx, update.Key, update.Value, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return entry, nil
}

func (s *service) UpsertMany(ctx context.Context, updates []domain.TextContentUpdate) ([]domain.TextContent, error) {
	for _, update := range updates {
		if update.Key == "" {
			return nil, ErrMissingKey
		}
	}

	now := time.Now().UTC()
	results := make([]domain.TextContent, 0, len(updates))
	for _, update := range updates {
		entry, err := s.textContentRepo.Upsert(ctx, update.Key, update.Value, now)
		if err != nil {
			return nil, err
		}
		results = append(results, *entry)
	}

	s.invalidate(ctx)
	return results, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKey).Err()
	}
}
