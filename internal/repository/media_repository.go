package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"lumiere-photography/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.MediaItem) error
	GetByID(ctx context.Context, id string) (*domain.MediaItem, error)
	List(ctx context.Context) ([]domain.MediaItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.MediaItem, error)
	Update(ctx context.Context, media *domain.MediaItem) error
	Delete(ctx context.Context, id string) error
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.MediaItem) error {
	query := r.db.Rebind(`
		INSERT INTO media (id, file_name, file_url, title, caption, category, media_type, uploaded_at, file_size, mime_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.FileName, media.FileURL,
		media.Title, media.Caption, media.Category, media.MediaType,
		media.UploadedAt, media.FileSize, media.MimeType,
		media.CreatedAt, media.UpdatedAt,
	)
	return err
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	var media domain.MediaItem
	query := r.db.Rebind(`SELECT * FROM media WHERE id = ?`)
	err := r.db.GetContext(ctx, &media, query, id)
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context) ([]domain.MediaItem, error) {
	mediaList := []domain.MediaItem{}
	query := `SELECT * FROM media ORDER BY uploaded_at DESC`
	err := r.db.SelectContext(ctx, &mediaList, query)
	return mediaList, err
}

func (r *mediaRepository) ListByCategory(ctx context.Context, category string) ([]domain.MediaItem, error) {
	mediaList := []domain.MediaItem{}
	query := r.db.Rebind(`SELECT * FROM media WHERE category = ? ORDER BY uploaded_at DESC`)
	err := r.db.SelectContext(ctx, &mediaList, query, category)
	return mediaList, err
}

func (r *mediaRepository) Update(ctx context.Context, media *domain.MediaItem) error {
	query := r.db.Rebind(`
		UPDATE media
		SET title = ?, caption = ?, category = ?, media_type = ?, updated_at = ?
		WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query,
		media.Title, media.Caption, media.Category, media.MediaType, media.UpdatedAt, media.ID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM media WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

// requireRows maps a zero-row mutation to sql.ErrNoRows so handlers can
// translate it to a 404 uniformly.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
