package cart

import (
	"context"
	"errors"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	const q = `
SELECT cart
FROM sessions
WHERE id = $1
`
	cart := domain.Cart{}
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&cart); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Cart{}, nil
		}
		return nil, err
	}
	if cart == nil {
		cart = domain.Cart{}
	}
	return cart, nil
}

func (r *postgresRepo) Mutate(ctx context.Context, sessionID string, fn func(domain.Cart)) (domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO sessions (id) VALUES ($1)
ON CONFLICT (id) DO NOTHING
`, sessionID); err != nil {
		return nil, err
	}

	cart := domain.Cart{}
	if err := tx.QueryRow(ctx, `
SELECT cart
FROM sessions
WHERE id = $1
FOR UPDATE
`, sessionID).Scan(&cart); err != nil {
		return nil, err
	}
	if cart == nil {
		cart = domain.Cart{}
	}

	fn(cart)

	if _, err := tx.Exec(ctx, `
UPDATE sessions
SET cart = $2, updated_at = now()
WHERE id = $1
`, sessionID, cart); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return cart, nil
}
