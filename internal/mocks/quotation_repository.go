package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
)

type QuotationRepository struct {
	mock.Mock
}

func (m *QuotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *QuotationRepository) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *QuotationRepository) List(ctx context.Context) ([]domain.Quotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *QuotationRepository) UpdateStatus(ctx context.Context, id int64, status string, now time.Time) error {
	args := m.Called(ctx, id, status, now)
	return args.Error(0)
}

func (m *QuotationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
