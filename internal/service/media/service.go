package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/storage"
)

var (
	ErrFileTooLarge     = errors.New("file size exceeds the configured upload limit")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrInvalidMediaType = errors.New("invalid media type")
)

type Service interface {
	Upload(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader, title, caption, category string) (*domain.MediaItem, error)
	GetByID(ctx context.Context, id string) (*domain.MediaItem, error)
	List(ctx context.Context) ([]domain.MediaItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.MediaItem, error)
	Update(ctx context.Context, id string, input domain.UpdateMediaInput) (*domain.MediaItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	mediaRepo repository.MediaRepository
	blobs     storage.BlobStore
	cfg       *config.Config
}

func NewService(mediaRepo repository.MediaRepository, blobs storage.BlobStore, cfg *config.Config) Service {
	return &service{
		mediaRepo: mediaRepo,
		blobs:     blobs,
		cfg:       cfg,
	}
}

// Upload validates the file, writes the bytes to blob storage, then inserts
// the referencing row. If the insert fails the just-written blob is removed so
// no row ever references a missing object and no object outlives a failed row.
func (s *service) Upload(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader, title, caption, category string) (*domain.MediaItem, error) {
	if fileSize > s.cfg.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	if !s.cfg.MimeAllowed(mimeType) {
		return nil, ErrUnsupportedType
	}

	mediaType, err := deriveMediaType(mimeType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("media/%s%s", uuid.New().String(), fileExtension(fileName, mimeType))

	url, err := s.blobs.Put(ctx, key, reader, fileSize, mimeType)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	if category == "" {
		category = "General"
	}

	now := time.Now().UTC()
	item := &domain.MediaItem{
		ID:         uuid.New().String(),
		FileName:   fileName,
		FileURL:    url,
		Title:      title,
		Caption:    caption,
		Category:   category,
		MediaType:  mediaType,
		UploadedAt: now,
		FileSize:   fileSize,
		MimeType:   mimeType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.mediaRepo.Create(ctx, item); err != nil {
		if removeErr := s.blobs.Remove(ctx, key); removeErr != nil {
			log.Printf("Failed to clean up blob %s after insert failure: %v", key, removeErr)
		}
		return nil, err
	}

	return item, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]domain.MediaItem, error) {
	return s.mediaRepo.List(ctx)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]domain.MediaItem, error) {
	return s.mediaRepo.ListByCategory(ctx, category)
}

// Update applies the mutable fields only. media_type may be set to any of the
// three values here; "reel" is reachable only through this path, never derived
// at upload.
func (s *service) Update(ctx context.Context, id string, input domain.UpdateMediaInput) (*domain.MediaItem, error) {
	item, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Caption != nil {
		item.Caption = *input.Caption
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.MediaType != nil {
		if !domain.ValidMediaType(*input.MediaType) {
			return nil, ErrInvalidMediaType
		}
		item.MediaType = *input.MediaType
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.mediaRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the blob best-effort before deleting the row. A failed blob
// delete is logged and swallowed; the row is removed regardless.
func (s *service) Delete(ctx context.Context, id string) error {
	item, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	key := storage.KeyFromURL(item.FileURL)
	if err := s.blobs.Remove(ctx, key); err != nil {
		log.Printf("Failed to delete blob %s for media %s: %v", key, id, err)
	}

	return s.mediaRepo.Delete(ctx, id)
}

func deriveMediaType(mimeType string) (string, error) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return domain.MediaTypePhoto, nil
	case strings.HasPrefix(mimeType, "video/"):
		return domain.MediaTypeVideo, nil
	default:
		return "", ErrUnsupportedType
	}
}

func fileExtension(fileName, mimeType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
