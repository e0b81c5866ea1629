package background

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/storage"
)

var (
	ErrInvalidSectionType = errors.New("invalid section type")
	ErrUnsupportedType    = errors.New("only image files are allowed for background images")
	ErrFileTooLarge       = errors.New("file size exceeds the configured upload limit")
)

// Backgrounds are always static images; videos make no sense here.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type Service interface {
	Upload(ctx context.Context, sectionType, sectionName, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.BackgroundImage, error)
	List(ctx context.Context) ([]domain.BackgroundImage, error)
	ListBySectionType(ctx context.Context, sectionType string) ([]domain.BackgroundImage, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	backgroundRepo repository.BackgroundRepository
	blobs          storage.BlobStore
	cfg            *config.Config
}

func NewService(backgroundRepo repository.BackgroundRepository, blobs storage.BlobStore, cfg *config.Config) Service {
	return &service{
		backgroundRepo: backgroundRepo,
		blobs:          blobs,
		cfg:            cfg,
	}
}

// Upload upserts the binding for (sectionType, sectionName): the new blob is
// written first, then the existing row is updated in place or a new row is
// inserted. The replaced blob is removed best-effort after the record commits.
func (s *service) Upload(ctx context.Context, sectionType, sectionName, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.BackgroundImage, error) {
	if !domain.ValidSectionType(sectionType) {
		return nil, ErrInvalidSectionType
	}
	if fileSize > s.cfg.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	if !allowedImageTypes[mimeType] {
		return nil, ErrUnsupportedType
	}

	key := fmt.Sprintf("backgrounds/%s%s", uuid.New().String(), filepath.Ext(fileName))

	url, err := s.blobs.Put(ctx, key, reader, fileSize, mimeType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.backgroundRepo.GetBySection(ctx, sectionType, sectionName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		if removeErr := s.blobs.Remove(ctx, key); removeErr != nil {
			log.Printf("Failed to clean up blob %s after lookup failure: %v", key, removeErr)
		}
		return nil, err
	}

	if existing != nil {
		oldKey := storage.KeyFromURL(existing.BackgroundImageURL)

		existing.BackgroundImageURL = url
		existing.FileName = fileName
		existing.FileSize = fileSize
		existing.MimeType = mimeType
		existing.UpdatedAt = now

		if err := s.backgroundRepo.Update(ctx, existing); err != nil {
			if removeErr := s.blobs.Remove(ctx, key); removeErr != nil {
				log.Printf("Failed to clean up blob %s after update failure: %v", key, removeErr)
			}
			return nil, err
		}

		if err := s.blobs.Remove(ctx, oldKey); err != nil {
			log.Printf("Failed to delete replaced background blob %s: %v", oldKey, err)
		}

		return existing, nil
	}

	bg := &domain.BackgroundImage{
		SectionType:        sectionType,
		SectionName:        sectionName,
		BackgroundImageURL: url,
		FileName:           fileName,
		FileSize:           fileSize,
		MimeType:           mimeType,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.backgroundRepo.Create(ctx, bg); err != nil {
		if removeErr := s.blobs.Remove(ctx, key); removeErr != nil {
			log.Printf("Failed to clean up blob %s after insert failure: %v", key, removeErr)
		}
		return nil, err
	}

	return bg, nil
}

func (s *service) List(ctx context.Context) ([]domain.BackgroundImage, error) {
	return s.backgroundRepo.List(ctx)
}

func (s *service) ListBySectionType(ctx context.Context, sectionType string) ([]domain.BackgroundImage, error) {
	if !domain.ValidSectionType(sectionType) {
		return nil, ErrInvalidSectionType
	}
	return s.backgroundRepo.ListBySectionType(ctx, sectionType)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	bg, err := s.backgroundRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	key := storage.KeyFromURL(bg.BackgroundImageURL)
	if err := s.blobs.Remove(ctx, key); err != nil {
		log.Printf("Failed to delete background blob %s: %v", key, err)
	}

	return s.backgroundRepo.Delete(ctx, id)
}
