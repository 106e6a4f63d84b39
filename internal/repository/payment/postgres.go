package payment

import (
	"context"
	"errors"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id::text, order_id::text, user_id::text, method, status, transaction_id, amount_cents, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	const q = `
INSERT INTO payments (order_id, user_id, method, status, amount_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.OrderID, p.UserID, string(p.Method), string(p.Status), p.AmountCents).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetForUser(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	const q = `
SELECT ` + paymentColumns + `
FROM payments
WHERE user_id = $1 AND id = $2
`
	return r.fetch(ctx, r.pool, q, userID, paymentID)
}

func (r *postgresRepo) Resolve(ctx context.Context, paymentID string, outcome domain.PaymentStatus, transactionID string) (*domain.Payment, error) {
	if !outcome.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE payments
SET status = $2, transaction_id = NULLIF($3, '')
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + paymentColumns + `
`
	p, err := r.fetch(ctx, tx, q, paymentID, string(outcome), transactionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		// Distinguish a lost race from an unknown id.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE id = $1)`, paymentID).Scan(&exists); err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrInvalidTransition
		}
		return nil, domain.ErrNotFound
	}

	if outcome == domain.PaymentStatusSuccess {
		if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2
WHERE id = $1
`, p.OrderID, domain.OrderStatusPaid); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) fetch(ctx context.Context, q queryRower, sql string, args ...any) (*domain.Payment, error) {
	var p domain.Payment
	var method, status string
	var transactionID *string
	err := q.QueryRow(ctx, sql, args...).Scan(
		&p.ID,
		&p.OrderID,
		&p.UserID,
		&method,
		&status,
		&transactionID,
		&p.AmountCents,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Method = domain.PaymentMethod(method)
	p.Status = domain.PaymentStatus(status)
	p.TransactionID = transactionID
	return &p, nil
}
