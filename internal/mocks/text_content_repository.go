package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
)

type TextContentRepository struct {
	mock.Mock
}

func (m *TextContentRepository) List(ctx context.Context) ([]domain.TextContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TextContent), args.Error(1)
}

func (m *TextContentRepository) GetByKey(ctx context.Context, key string) (*domain.TextContent, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TextContent), args.Error(1)
}

func (m *TextContentRepository) Upsert(ctx context.Context, key, value string, now time.Time) (*domain.TextContent, error) {
	args := m.Called(ctx, key, value, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TextContent), args.Error(1)
}
