package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere-photography/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, status string) ([]domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status string, now time.Time) error
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := r.db.Rebind(`
		INSERT INTO reviews (client_name, email, rating, comment, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		review.ClientName, review.Email, review.Rating, review.Comment,
		review.Status, review.CreatedAt, review.UpdatedAt,
	).Scan(&review.ID)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	query := r.db.Rebind(`SELECT * FROM reviews WHERE id = ?`)
	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns all reviews, optionally filtered by status, newest first.
func (r *reviewRepository) List(ctx context.Context, status string) ([]domain.Review, error) {
	reviews := []domain.Review{}

	if status != "" {
		query := r.db.Rebind(`SELECT * FROM reviews WHERE status = ? ORDER BY created_at DESC`)
		err := r.db.SelectContext(ctx, &reviews, query, status)
		return reviews, err
	}

	query := `SELECT * FROM reviews ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &reviews, query)
	return reviews, err
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id int64, status string, now time.Time) error {
	query := r.db.Rebind(`UPDATE reviews SET status = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, status, now, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM reviews WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}
