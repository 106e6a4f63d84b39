package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Category    string
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	ImageURL    string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []string{"Milk", "Fruits", "Vegetables"}
	categoryIDs := make(map[string]string, len(categories))
	for _, name := range categories {
		id, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	products := []productSeed{
		{
			Category:    "Milk",
			Name:        "Whole Milk 1L",
			Description: "Fresh pasteurized whole milk",
			PriceCents:  199,
			Stock:       120,
			ImageURL:    "/media/products/whole-milk.png",
		},
		{
			Category:    "Milk",
			Name:        "Greek Yogurt 500g",
			Description: "Thick strained yogurt",
			PriceCents:  349,
			Stock:       60,
			ImageURL:    "/media/products/greek-yogurt.png",
		},
		{
			Category:    "Fruits",
			Name:        "Bananas 1kg",
			Description: "Ripe Cavendish bananas",
			PriceCents:  129,
			Stock:       200,
			ImageURL:    "/media/products/bananas.png",
		},
		{
			Category:    "Fruits",
			Name:        "Apples 1kg",
			Description: "Crisp red apples",
			PriceCents:  259,
			Stock:       150,
			ImageURL:    "/media/products/apples.png",
		},
		{
			Category:    "Vegetables",
			Name:        "Tomatoes 500g",
			Description: "Vine-ripened tomatoes",
			PriceCents:  179,
			Stock:       90,
			ImageURL:    "/media/products/tomatoes.png",
		},
		{
			Category:    "Vegetables",
			Name:        "Spinach 250g",
			Description: "Washed baby spinach",
			PriceCents:  149,
			Stock:       80,
			ImageURL:    "/media/products/spinach.png",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryIDs[p.Category], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (category_id, name, description, price_cents, stock, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (category_id, name) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    image_url = EXCLUDED.image_url
`
	_, err := pool.Exec(ctx, q, categoryID, p.Name, p.Description, p.PriceCents, p.Stock, p.ImageURL)
	return err
}
