package payment

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type Repository interface {
	// Create inserts a pending payment for an order. Returns
	// domain.ErrAlreadyExists when the order already has a payment that is
	// not failed.
	Create(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	GetForUser(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	// Resolve moves a payment out of PENDING. Exactly one caller wins a race:
	// the guard on the current status makes the losing transition fail with
	// domain.ErrInvalidTransition. On SUCCESS the order is marked paid in the
	// same transaction.
	Resolve(ctx context.Context, paymentID string, outcome domain.PaymentStatus, transactionID string) (*domain.Payment, error)
}
