package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
)

type MediaRepository struct {
	mock.Mock
}

func (m *MediaRepository) Create(ctx context.Context, media *domain.MediaItem) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaItem), args.Error(1)
}

func (m *MediaRepository) List(ctx context.Context) ([]domain.MediaItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MediaRepository) ListByCategory(ctx context.Context, category string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MediaRepository) Update(ctx context.Context, media *domain.MediaItem) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
