package quotation

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/service/email"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidEmail  = errors.New("please provide a valid email address")
	ErrInvalidPhone  = errors.New("please provide a valid phone number")
	ErrInvalidStatus = errors.New("invalid status, must be pending, contacted, or completed")
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
)

type Service interface {
	Create(ctx context.Context, input domain.CreateQuotationInput) (*domain.Quotation, error)
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	List(ctx context.Context) ([]domain.Quotation, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	quotationRepo repository.QuotationRepository
	emailService  email.Service
}

func NewService(quotationRepo repository.QuotationRepository, emailService email.Service) Service {
	return &service{
		quotationRepo: quotationRepo,
		emailService:  emailService,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateQuotationInput) (*domain.Quotation, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.EventDate == "" ||
		input.Location == "" || input.Message == "" || input.Service == "" {
		return nil, ErrMissingFields
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}
	if !phoneRegex.MatchString(input.Phone) {
		return nil, ErrInvalidPhone
	}

	now := time.Now().UTC()
	q := &domain.Quotation{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventDate: input.EventDate,
		Location:  input.Location,
		Message:   input.Message,
		Service:   input.Service,
		Status:    domain.QuotationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.quotationRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendQuotationNotification(context.Background(), q); err != nil {
				log.Printf("Failed to send quotation notification: %v", err)
			}
		}()
	}

	return q, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	return s.quotationRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]domain.Quotation, error) {
	return s.quotationRepo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !domain.ValidQuotationStatus(status) {
		return ErrInvalidStatus
	}
	return s.quotationRepo.UpdateStatus(ctx, id, status, time.Now().UTC())
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.quotationRepo.Delete(ctx, id)
}
