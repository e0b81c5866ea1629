package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere-photography/internal/domain"
)

type TextContentRepository interface {
	List(ctx context.Context) ([]domain.TextContent, error)
	GetByKey(ctx context.Context, key string) (*domain.TextContent, error)
	Upsert(ctx context.Context, key, value string, now time.Time) (*domain.TextContent, error)
}

type textContentRepository struct {
	db *sqlx.DB
}

func NewTextContentRepository(db *sqlx.DB) TextContentRepository {
	return &textContentRepository{db: db}
}

func (r *textContentRepository) List(ctx context.Context) ([]domain.TextContent, error) {
	entries := []domain.TextContent{}
	query := `SELECT * FROM text_content ORDER BY key ASC`
	err := r.db.SelectContext(ctx, &entries, query)
	return entries, err
}

func (r *textContentRepository) GetByKey(ctx context.Context, key string) (*domain.TextContent, error) {
	var entry domain.TextContent
	query := r.db.Rebind(`SELECT * FROM text_content WHERE key = ?`)
	err := r.db.GetContext(ctx, &entry, query, key)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert updates the entry if the key exists, otherwise inserts it. Entries
// are never deleted, so update-then-insert is race-safe enough for a single
// admin writer.
func (r *textContentRepository) Upsert(ctx context.Context, key, value string, now time.Time) (*domain.TextContent, error) {
	updateQuery := r.db.Rebind(`UPDATE text_content SET value = ?, updated_at = ? WHERE key = ?`)
	res, err := r.db.ExecContext(ctx, updateQuery, value, now, key)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		insertQuery := r.db.Rebind(`INSERT INTO text_content (key, value, created_at, updated_at) VALUES (?, ?, ?, ?)`)
		if _, err := r.db.ExecContext(ctx, insertQuery, key, value, now, now); err != nil {
			return nil, err
		}
	}

	return r.GetByKey(ctx, key)
}
