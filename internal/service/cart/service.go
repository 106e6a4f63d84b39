package cart

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

// Service maintains the ephemeral quantity mapping for one session. It never
// clears a cart itself; the clear belongs to the checkout transaction.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Mutate(ctx context.Context, sessionID string, fn func(domain.Cart)) (domain.Cart, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// Add inserts the product with the given quantity or raises an existing
// entry. The product must resolve against the catalog so a stale id can
// never enter the cart.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: session and product required", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.Mutate(ctx, sessionID, func(c domain.Cart) {
		c.Add(productID, quantity)
	})
}

// Adjust applies an increment or decrement action. Decrementing a quantity of
// one removes the entry; acting on an absent product is a no-op.
func (s *Service) Adjust(ctx context.Context, sessionID, productID, action string) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: session and product required", domain.ErrInvalidInput)
	}
	switch strings.ToLower(strings.TrimSpace(action)) {
	case ActionIncrement:
		return s.repo.Mutate(ctx, sessionID, func(c domain.Cart) {
			c.Increment(productID)
		})
	case ActionDecrement:
		return s.repo.Mutate(ctx, sessionID, func(c domain.Cart) {
			c.Decrement(productID)
		})
	}
	return nil, fmt.Errorf("%w: unsupported action", domain.ErrInvalidInput)
}

// Remove deletes the entry if present; removing an absent product is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: session and product required", domain.ErrInvalidInput)
	}
	return s.repo.Mutate(ctx, sessionID, func(c domain.Cart) {
		c.Remove(productID)
	})
}

// View resolves each cart line against the catalog and computes per-line
// subtotals and the running total. It performs no mutation.
func (s *Service) View(ctx context.Context, sessionID string) (*domain.CartView, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(cart))
	for id := range cart {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	view := &domain.CartView{SessionID: sessionID, Lines: []domain.CartLine{}}
	for _, id := range productIDs {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		qty := cart[id]
		subtotal := product.PriceCents * int64(qty)
		view.Lines = append(view.Lines, domain.CartLine{
			Product:       *product,
			Quantity:      qty,
			SubtotalCents: subtotal,
		})
		view.TotalCents += subtotal
	}
	return view, nil
}
