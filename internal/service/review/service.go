package review

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/service/email"
)

var (
	ErrMissingFields   = errors.New("all fields are required")
	ErrInvalidEmail    = errors.New("please provide a valid email address")
	ErrInvalidRating   = errors.New("rating must be an integer between 1 and 5")
	ErrCommentTooShort = errors.New("comment must be at least 10 characters long")
	ErrInvalidStatus   = errors.New("invalid status, must be one of: pending, approved, rejected")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	approvedCacheKey = "reviews:approved"
	cacheTTL         = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, status string) ([]domain.Review, error)
	ListApproved(ctx context.Context) ([]domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reviewRepo   repository.ReviewRepository
	redis        *redis.Client
	emailService email.Service
}

func NewService(reviewRepo repository.ReviewRepository, redis *redis.Client, emailService email.Service) Service {
	return &service{
		reviewRepo:   reviewRepo,
		redis:        redis,
		emailService: emailService,
	}
}

// Create validates and stores a public submission. New reviews always start
// pending; nothing a visitor sends can make one publicly visible.
func (s *service) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.ClientName == "" || input.Email == "" || input.Rating == 0 || input.Comment == "" {
		return nil, ErrMissingFields
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	comment := strings.TrimSpace(input.Comment)
	if len(comment) < 10 {
		return nil, ErrCommentTooShort
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ClientName: strings.TrimSpace(input.ClientName),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Rating:     input.Rating,
		Comment:    comment,
		Status:     domain.ReviewStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendReviewNotification(context.Background(), review); err != nil {
				log.Printf("Failed to send review notification: %v", err)
			}
		}()
	}

	return review, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, status string) ([]domain.Review, error) {
	if status != "" && !domain.ValidReviewStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.reviewRepo.List(ctx, status)
}

func (s *service) ListApproved(ctx context.Context) ([]domain.Review, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, approvedCacheKey).Result(); err == nil {
			var reviews []domain.Review
			if err := json.Unmarshal([]byte(cached), &reviews); err == nil {
				return reviews, nil
			}
		}
	}

	reviews, err := s.reviewRepo.List(ctx, domain.ReviewStatusApproved)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(reviews); err == nil {
			_ = s.redis.Set(ctx, approvedCacheKey, data, cacheTTL).Err()
		}
	}

	return reviews, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Review, error) {
	if !domain.ValidReviewStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := s.reviewRepo.UpdateStatus(ctx, id, status, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, approvedCacheKey).Err()
	}
}
