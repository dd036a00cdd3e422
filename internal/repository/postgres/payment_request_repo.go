package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

type paymentRequestRepo struct {
	db *sqlx.DB
}

// NewPaymentRequestRepo creates a new PostgreSQL-backed PaymentRequestRepository.
func NewPaymentRequestRepo(db *sqlx.DB) port.PaymentRequestRepository {
	return &paymentRequestRepo{db: db}
}

func (r *paymentRequestRepo) Create(ctx context.Context, p *domain.PaymentRequest) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	p.Status = domain.PaymentRequestPending

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payment_requests (id, from_user_id, to_user_id, amount, note, status, payment_link, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.FromUserID, p.ToUserID, p.Amount, p.Note, p.Status, p.PaymentLink, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRequestRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error) {
	var p domain.PaymentRequest
	err := r.db.GetContext(ctx, &p, "SELECT * FROM payment_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRequestRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *paymentRequestRepo) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentRequest, error) {
	var reqs []domain.PaymentRequest
	err := r.db.SelectContext(ctx, &reqs,
		`SELECT * FROM payment_requests
		 WHERE from_user_id = $1 OR to_user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("paymentRequestRepo.ListByUser: %w", err)
	}
	return reqs, nil
}

func (r *paymentRequestRepo) MarkSettled(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payment_requests SET status = $1, settled_at = $2
		 WHERE id = $3 AND status = $4`,
		domain.PaymentRequestSettled, time.Now().UTC(), id, domain.PaymentRequestPending)
	if err != nil {
		return fmt.Errorf("paymentRequestRepo.MarkSettled: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrPaymentRequestSettled
	}
	return nil
}
