package order

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

// CheckoutInput names the cart session to convert and the order fields that
// do not come from the cart itself. Lines and totals are derived inside the
// checkout transaction so no mid-transaction price change is visible.
type CheckoutInput struct {
	UserID    string
	SessionID string
	Delivery  domain.DeliveryDetails
	Method    domain.PaymentMethod
}

type Repository interface {
	// CheckoutFromCart converts the session's cart into an order in a single
	// transaction: order row, one item per cart line with the price
	// snapshotted, stock decrement, cart clear, and for ONLINE orders a
	// pending payment. Any failure rolls the whole thing back and the cart
	// survives intact. Returns domain.ErrEmptyCart when the locked cart is
	// empty, domain.ErrNotFound when a line's product no longer resolves and
	// domain.ErrInsufficientStock when stock cannot cover a line.
	CheckoutFromCart(ctx context.Context, in CheckoutInput) (*domain.Order, *domain.Payment, error)
	// ListByUser returns the user's orders newest-first, without items.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// GetForUser returns one of the user's orders with its items.
	GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error)
}
