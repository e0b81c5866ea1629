package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lumiere-photography/internal/domain"
)

type BackgroundRepository interface {
	Create(ctx context.Context, bg *domain.BackgroundImage) error
	GetByID(ctx context.Context, id int64) (*domain.BackgroundImage, error)
	GetBySection(ctx context.Context, sectionType, sectionName string) (*domain.BackgroundImage, error)
	List(ctx context.Context) ([]domain.BackgroundImage, error)
	ListBySectionType(ctx context.Context, sectionType string) ([]domain.BackgroundImage, error)
	Update(ctx context.Context, bg *domain.BackgroundImage) error
	Delete(ctx context.Context, id int64) error
}

type backgroundRepository struct {
	db *sqlx.DB
}

func NewBackgroundRepository(db *sqlx.DB) BackgroundRepository {
	return &backgroundRepository{db: db}
}

func (r *backgroundRepository) Create(ctx context.Context, bg *domain.BackgroundImage) error {
	query := r.db.Rebind(`
		INSERT INTO background_images (section_type, section_name, background_image_url, file_name, file_size, mime_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		bg.SectionType, bg.SectionName, bg.BackgroundImageURL,
		bg.FileName, bg.FileSize, bg.MimeType,
		bg.CreatedAt, bg.UpdatedAt,
	).Scan(&bg.ID)
}

func (r *backgroundRepository) GetByID(ctx context.Context, id int64) (*domain.BackgroundImage, error) {
	var bg domain.BackgroundImage
	query := r.db.Rebind(`SELECT * FROM background_images WHERE id = ?`)
	err := r.db.GetContext(ctx, &bg, query, id)
	if err != nil {
		return nil, err
	}
	return &bg, nil
}

func (r *backgroundRepository) GetBySection(ctx context.Context, sectionType, sectionName string) (*domain.BackgroundImage, error) {
	var bg domain.BackgroundImage
	query := r.db.Rebind(`SELECT * FROM background_images WHERE section_type = ? AND section_name = ?`)
	err := r.db.GetContext(ctx, &bg, query, sectionType, sectionName)
	if err != nil {
		return nil, err
	}
	return &bg, nil
}

func (r *backgroundRepository) List(ctx context.Context) ([]domain.BackgroundImage, error) {
	backgrounds := []domain.BackgroundImage{}
	query := `SELECT * FROM background_images ORDER BY section_type ASC, section_name ASC`
	err := r.db.SelectContext(ctx, &backgrounds, query)
	return backgrounds, err
}

func (r *backgroundRepository) ListBySectionType(ctx context.Context, sectionType string) ([]domain.BackgroundImage, error) {
	backgrounds := []domain.BackgroundImage{}
	query := r.db.Rebind(`SELECT * FROM background_images WHERE section_type = ? ORDER BY section_name ASC`)
	err := r.db.SelectContext(ctx, &backgrounds, query, sectionType)
	return backgrounds, err
}

func (r *backgroundRepository) Update(ctx context.Context, bg *domain.BackgroundImage) error {
	query := r.db.Rebind(`
		UPDATE background_images
		SET background_image_url = ?, file_name = ?, file_size = ?, mime_type = ?, updated_at = ?
		WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query,
		bg.BackgroundImageURL, bg.FileName, bg.FileSize, bg.MimeType, bg.UpdatedAt, bg.ID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *backgroundRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM background_images WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}
