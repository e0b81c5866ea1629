package service

import (
	"github.com/redis/go-redis/v9"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/service/auth"
	"lumiere-photography/internal/service/background"
	"lumiere-photography/internal/service/email"
	"lumiere-photography/internal/service/media"
	"lumiere-photography/internal/service/quotation"
	"lumiere-photography/internal/service/review"
	"lumiere-photography/internal/service/textcontent"
	"lumiere-photography/internal/storage"
)

type Services struct {
	Auth        auth.Service
	Media       media.Service
	Background  background.Service
	TextContent textcontent.Service
	Quotation   quotation.Service
	Review      review.Service
	Email       email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, blobs storage.BlobStore, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)

	return &Services{
		Auth:        auth.NewService(cfg),
		Media:       media.NewService(repos.Media, blobs, cfg),
		Background:  background.NewService(repos.Background, blobs, cfg),
		TextContent: textcontent.NewService(repos.TextContent, redis),
		Quotation:   quotation.NewService(repos.Quotation, emailService),
		Review:      review.NewService(repos.Review, redis, emailService),
		Email:       emailService,
	}
}
