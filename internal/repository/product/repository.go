package product

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	// Upsert is the seed/import write path; the storefront never writes
	// products.
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
