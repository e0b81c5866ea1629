package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"lumiere-photography/internal/domain"
)

type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) error
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	List(ctx context.Context) ([]domain.Quotation, error)
	UpdateStatus(ctx context.Context, id int64, status string, now time.Time) error
	Delete(ctx context.Context, id int64) error
}

type quotationRepository struct {
	db *sqlx.DB
}

func NewQuotationRepository(db *sqlx.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	query := r.db.Rebind(`
		INSERT INTO quotations (name, email, phone, event_date, location, message, service, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	return r.db.QueryRowxContext(ctx, query,
		q.Name, q.Email, q.Phone, q.EventDate, q.Location, q.Message, q.Service,
		q.Status, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
}

func (r *quotationRepository) GetByID(ctx context.Context, id int64) (*domain.Quotation, error) {
	var q domain.Quotation
	query := r.db.Rebind(`SELECT * FROM quotations WHERE id = ?`)
	err := r.db.GetContext(ctx, &q, query, id)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quotationRepository) List(ctx context.Context) ([]domain.Quotation, error) {
	quotations := []domain.Quotation{}
	query := `SELECT * FROM quotations ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &quotations, query)
	return quotations, err
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id int64, status string, now time.Time) error {
	query := r.db.Rebind(`UPDATE quotations SET status = ?, updated_at = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, status, now, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *quotationRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM quotations WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}
