package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	orderrepo "github.com/Bhargavikambam/GreenBag/internal/repository/order"
)

// Service is the cart-to-order pipeline plus the order query surface.
type Service struct {
	repo orderRepo
}

type orderRepo interface {
	CheckoutFromCart(ctx context.Context, in orderrepo.CheckoutInput) (*domain.Order, *domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CheckoutInput is the delivery and payment form submitted at checkout.
type CheckoutInput struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout validates the form, then converts the session's cart into a
// durable order. All validation happens before any write; from there the
// repository transaction guarantees all-or-nothing. For ONLINE orders the
// returned payment is the pending payment to confirm; for COD it is nil.
func (s *Service) Checkout(ctx context.Context, userID, sessionID string, in CheckoutInput) (*domain.Order, *domain.Payment, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, nil, fmt.Errorf("%w: full name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, nil, fmt.Errorf("%w: phone required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, nil, fmt.Errorf("%w: address required", domain.ErrInvalidInput)
	}
	method, ok := domain.ParsePaymentMethod(strings.ToUpper(strings.TrimSpace(in.PaymentMethod)))
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown payment method", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, nil, domain.ErrEmptyCart
	}

	return s.repo.CheckoutFromCart(ctx, orderrepo.CheckoutInput{
		UserID:    userID,
		SessionID: sessionID,
		Delivery: domain.DeliveryDetails{
			FullName: strings.TrimSpace(in.FullName),
			Phone:    strings.TrimSpace(in.Phone),
			Address:  strings.TrimSpace(in.Address),
		},
		Method: method,
	})
}

// ListForUser returns the user's order history, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetForUser returns one order with its items; other users' orders are
// indistinguishable from missing ones.
func (s *Service) GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return s.repo.GetForUser(ctx, userID, orderID)
}
