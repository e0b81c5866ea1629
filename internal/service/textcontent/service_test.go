package textcontent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/mocks"
	"lumiere-photography/internal/service/textcontent"
)

func TestTextContentService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.TextContentRepository)
		svc := textcontent.NewService(mockRepo, nil)

		entry := &domain.TextContent{ID: 1, Key: "hero_title", Value: "Timeless moments"}
		mockRepo.On("Upsert", ctx, "hero_title", "Timeless moments", mock.Anything).
			Return(entry, nil).Once()

		result, err := svc.Upsert(ctx, domain.TextContentUpdate{
			Key:   "hero_title",
			Value: "Timeless moments",
		})

		assert.NoError(t, err)
		assert.Equal(t, "hero_title", result.Key)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Key", func(t *testing.T) {
		mockRepo := new(mocks.TextContentRepository)
		svc := textcontent.NewService(mockRepo, nil)

		_, err := svc.Upsert(ctx, domain.TextContentUpdate{Value: "orphaned"})

		assert.ErrorIs(t, err, textcontent.ErrMissingKey)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTextContentService_UpsertMany(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.TextContentRepository)
		svc := textcontent.NewService(mockRepo, nil)

		first := &domain.TextContent{ID: 1, Key: "hero_title", Value: "Timeless moments"}
		second := &domain.TextContent{ID: 2, Key: "about_text", Value: "Since 2012"}
		mockRepo.On("Upsert", ctx, "hero_title", "Timeless moments", mock.Anything).
			Return(first, nil).Once()
		mockRepo.On("Upsert", ctx, "about_text", "Since 2012", mock.Anything).
			Return(second, nil).Once()

		results, err := svc.UpsertMany(ctx, []domain.TextContentUpdate{
			{Key: "hero_title", Value: "Timeless moments"},
			{Key: "about_text", Value: "Since 2012"},
		})

		assert.NoError(t, err)
		assert.Len(t, results, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects Batch With Missing Key Before Any Write", func(t *testing.T) {
		mockRepo := new(mocks.TextContentRepository)
		svc := textcontent.NewService(mockRepo, nil)

		_, err := svc.UpsertMany(ctx, []domain.TextContentUpdate{
			{Key: "hero_title", Value: "Timeless moments"},
			{Key: "", Value: "orphaned"},
		})

		assert.ErrorIs(t, err, textcontent.ErrMissingKey)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTextContentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Through Without Cache", func(t *testing.T) {
		mockRepo := new(mocks.TextContentRepository)
		svc := textcontent.NewService(mockRepo, nil)

		expected := []domain.TextContent{{ID: 1, Key: "hero_title", Value: "Timeless moments"}}
		mockRepo.On("List", ctx).Return(expected, nil).Once()

		entries, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
		mockRepo.AssertExpectations(t)
	})
}
