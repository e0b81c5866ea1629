package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
)

type BackgroundRepository struct {
	mock.Mock
}

func (m *BackgroundRepository) Create(ctx context.Context, bg *domain.BackgroundImage) error {
	args := m.Called(ctx, bg)
	return args.Error(0)
}

func (m *BackgroundRepository) GetByID(ctx context.Context, id int64) (*domain.BackgroundImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackgroundImage), args.Error(1)
}

func (m *BackgroundRepository) GetBySection(ctx context.Context, sectionType, sectionName string) (*domain.BackgroundImage, error) {
	args := m.Called(ctx, sectionType, sectionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackgroundImage), args.Error(1)
}

func (m *BackgroundRepository) List(ctx context.Context) ([]domain.BackgroundImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BackgroundImage), args.Error(1)
}

func (m *BackgroundRepository) ListBySectionType(ctx context.Context, sectionType string) ([]domain.BackgroundImage, error) {
	args := m.Called(ctx, sectionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BackgroundImage), args.Error(1)
}

func (m *BackgroundRepository) Update(ctx context.Context, bg *domain.BackgroundImage) error {
	args := m.Called(ctx, bg)
	return args.Error(0)
}

func (m *BackgroundRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
