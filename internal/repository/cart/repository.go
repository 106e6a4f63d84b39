package cart

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type Repository interface {
	// Get returns the session's cart, or an empty cart when the session has
	// no row yet.
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	// Mutate applies fn to the cart under a per-session row lock so
	// concurrent mutations of the same session never lose updates. The
	// session row is created on first use.
	Mutate(ctx context.Context, sessionID string, fn func(domain.Cart)) (domain.Cart, error)
}
