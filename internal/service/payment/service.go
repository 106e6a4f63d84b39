package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	paymentrepo "github.com/Bhargavikambam/GreenBag/internal/repository/payment"
	"github.com/google/uuid"
)

// Service drives the simulated payment lifecycle of online orders.
type Service struct {
	repo      paymentRepo
	orderRepo orderRepo
}

type paymentRepo interface {
	Create(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	GetForUser(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	Resolve(ctx context.Context, paymentID string, outcome domain.PaymentStatus, transactionID string) (*domain.Payment, error)
}

type orderRepo interface {
	GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

func New(repo paymentrepo.Repository, orders orderRepo) *Service {
	return &Service{repo: repo, orderRepo: orders}
}

// Get returns one of the user's payments.
func (s *Service) Get(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	return s.repo.GetForUser(ctx, userID, paymentID)
}

// Confirm resolves a pending payment with the caller-supplied outcome. The
// outcome is trusted here; verifying gateway callbacks is the caller's
// problem. Confirming a payment that is already resolved fails with
// domain.ErrInvalidTransition and leaves the stored outcome untouched.
func (s *Service) Confirm(ctx context.Context, userID, paymentID, outcome, transactionID string) (*domain.Payment, error) {
	var status domain.PaymentStatus
	switch strings.ToUpper(strings.TrimSpace(outcome)) {
	case string(domain.PaymentStatusSuccess):
		status = domain.PaymentStatusSuccess
	case string(domain.PaymentStatusFailed):
		status = domain.PaymentStatusFailed
	default:
		return nil, fmt.Errorf("%w: unknown outcome", domain.ErrInvalidInput)
	}

	// Ownership check before touching state.
	if _, err := s.repo.GetForUser(ctx, userID, paymentID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(transactionID) == "" {
		transactionID = "sim-" + uuid.NewString()
	}
	return s.repo.Resolve(ctx, paymentID, status, transactionID)
}

// Retry opens a fresh pending payment for an online order whose previous
// attempt failed. Orders that are already paid, already have a pending
// payment, or were placed as cash-on-delivery are rejected.
func (s *Service) Retry(ctx context.Context, userID, orderID string) (*domain.Payment, error) {
	order, err := s.orderRepo.GetForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != domain.PaymentMethodOnline {
		return nil, fmt.Errorf("%w: order is not an online order", domain.ErrInvalidInput)
	}
	if order.Status == domain.OrderStatusPaid {
		return nil, domain.ErrInvalidTransition
	}
	return s.repo.Create(ctx, domain.Payment{
		OrderID:     order.ID,
		UserID:      userID,
		Method:      domain.PaymentMethodOnline,
		Status:      domain.PaymentStatusPending,
		AmountCents: order.TotalCents,
	})
}
