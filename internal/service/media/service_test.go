package media_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/mocks"
	"lumiere-photography/internal/service/media"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxUploadBytes:   50 * 1024 * 1024,
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "video/mp4"},
	}
}

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success With Defaults", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		mockBlobs.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "media/") && strings.HasSuffix(key, ".jpg")
		}), mock.Anything, int64(1024), "image/jpeg").
			Return("https://cdn.example.com/media/abc.jpg", nil).Once()

		mockRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.MediaItem) bool {
			return item.Title == "sunset" &&
				item.Category == "General" &&
				item.MediaType == domain.MediaTypePhoto &&
				item.FileURL == "https://cdn.example.com/media/abc.jpg"
		})).Return(nil).Once()

		item, err := svc.Upload(ctx, "sunset.jpg", 1024, "image/jpeg",
			strings.NewReader("data"), "", "", "")

		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "sunset", item.Title)
		assert.Equal(t, "General", item.Category)
		assert.Equal(t, domain.MediaTypePhoto, item.MediaType)
		mockRepo.AssertExpectations(t)
		mockBlobs.AssertExpectations(t)
	})

	t.Run("Video Mime Maps To Video Type", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		mockBlobs.On("Put", ctx, mock.Anything, mock.Anything, int64(2048), "video/mp4").
			Return("https://cdn.example.com/media/clip.mp4", nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.MediaItem) bool {
			return item.MediaType == domain.MediaTypeVideo
		})).Return(nil).Once()

		item, err := svc.Upload(ctx, "clip.mp4", 2048, "video/mp4",
			strings.NewReader("data"), "Clip", "", "Weddings")

		assert.NoError(t, err)
		assert.Equal(t, domain.MediaTypeVideo, item.MediaType)
		assert.Equal(t, "Weddings", item.Category)
	})

	t.Run("Unsupported Type Rejected Before Storage", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		_, err := svc.Upload(ctx, "doc.pdf", 1024, "application/pdf",
			strings.NewReader("data"), "", "", "")

		assert.ErrorIs(t, err, media.ErrUnsupportedType)
		mockBlobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("File Too Large Rejected Before Storage", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		_, err := svc.Upload(ctx, "huge.jpg", 51*1024*1024, "image/jpeg",
			strings.NewReader("data"), "", "", "")

		assert.ErrorIs(t, err, media.ErrFileTooLarge)
		mockBlobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Blob Removed When Insert Fails", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		var putKey string
		mockBlobs.On("Put", ctx, mock.Anything, mock.Anything, int64(1024), "image/jpeg").
			Run(func(args mock.Arguments) { putKey = args.String(1) }).
			Return("https://cdn.example.com/media/abc.jpg", nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
		mockBlobs.On("Remove", ctx, mock.MatchedBy(func(key string) bool {
			return key == putKey
		})).Return(nil).Once()

		_, err := svc.Upload(ctx, "sunset.jpg", 1024, "image/jpeg",
			strings.NewReader("data"), "", "", "")

		assert.Error(t, err)
		mockBlobs.AssertExpectations(t)
	})
}

func TestMediaService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.MediaItem {
		return &domain.MediaItem{
			ID:        "media-1",
			Title:     "Old title",
			Category:  "General",
			MediaType: domain.MediaTypeVideo,
		}
	}

	t.Run("Promote Video To Reel", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		svc := media.NewService(mockRepo, new(mocks.BlobStore), testConfig())

		mockRepo.On("GetByID", ctx, "media-1").Return(existing(), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(item *domain.MediaItem) bool {
			return item.MediaType == domain.MediaTypeReel && item.Title == "Old title"
		})).Return(nil).Once()

		reel := domain.MediaTypeReel
		item, err := svc.Update(ctx, "media-1", domain.UpdateMediaInput{MediaType: &reel})

		assert.NoError(t, err)
		assert.Equal(t, domain.MediaTypeReel, item.MediaType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid Media Type", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		svc := media.NewService(mockRepo, new(mocks.BlobStore), testConfig())

		mockRepo.On("GetByID", ctx, "media-1").Return(existing(), nil).Once()

		bad := "slideshow"
		_, err := svc.Update(ctx, "media-1", domain.UpdateMediaInput{MediaType: &bad})

		assert.ErrorIs(t, err, media.ErrInvalidMediaType)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		svc := media.NewService(mockRepo, new(mocks.BlobStore), testConfig())

		mockRepo.On("GetByID", ctx, "missing").Return(nil, sql.ErrNoRows).Once()

		title := "New"
		_, err := svc.Update(ctx, "missing", domain.UpdateMediaInput{Title: &title})

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestMediaService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Blob Then Row", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		item := &domain.MediaItem{
			ID:      "media-1",
			FileURL: "https://cdn.example.com/media/abc.jpg",
		}
		mockRepo.On("GetByID", ctx, "media-1").Return(item, nil).Once()
		mockBlobs.On("Remove", ctx, "media/abc.jpg").Return(nil).Once()
		mockRepo.On("Delete", ctx, "media-1").Return(nil).Once()

		err := svc.Delete(ctx, "media-1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockBlobs.AssertExpectations(t)
	})

	t.Run("Row Deleted Even If Blob Remove Fails", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		item := &domain.MediaItem{
			ID:      "media-1",
			FileURL: "https://cdn.example.com/media/abc.jpg",
		}
		mockRepo.On("GetByID", ctx, "media-1").Return(item, nil).Once()
		mockBlobs.On("Remove", ctx, "media/abc.jpg").Return(errors.New("storage down")).Once()
		mockRepo.On("Delete", ctx, "media-1").Return(nil).Once()

		err := svc.Delete(ctx, "media-1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MediaRepository)
		mockBlobs := new(mocks.BlobStore)
		svc := media.NewService(mockRepo, mockBlobs, testConfig())

		mockRepo.On("GetByID", ctx, "missing").Return(nil, sql.ErrNoRows).Once()

		err := svc.Delete(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		mockBlobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}
