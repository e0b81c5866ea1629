package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendQuotationNotification(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *EmailService) SendReviewNotification(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
