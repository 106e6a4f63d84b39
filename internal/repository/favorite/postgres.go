package favorite

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	// The insert-or-delete pair relies on the (user_id, product_id) primary
	// key: ON CONFLICT DO NOTHING makes the flip idempotent under retries.
	cmd, err := r.pool.Exec(ctx, `
INSERT INTO favorites (user_id, product_id)
VALUES ($1, $2)
ON CONFLICT (user_id, product_id) DO NOTHING
`, userID, productID)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() > 0 {
		return true, nil
	}

	if _, err := r.pool.Exec(ctx, `
DELETE FROM favorites
WHERE user_id = $1 AND product_id = $2
`, userID, productID); err != nil {
		return false, err
	}
	return false, nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	const q = `
SELECT p.id::text, p.category_id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.stock, p.image_url, p.created_at
FROM favorites f
JOIN products p ON p.id = f.product_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	const q = `
SELECT product_id::text
FROM favorites
WHERE user_id = $1
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
