package favorite

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type Repository interface {
	// Toggle flips the (user, product) membership and reports whether the
	// product is now a favorite.
	Toggle(ctx context.Context, userID, productID string) (added bool, err error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}
