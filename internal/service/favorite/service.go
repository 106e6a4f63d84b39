package favorite

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	favoriterepo "github.com/Bhargavikambam/GreenBag/internal/repository/favorite"
)

type Service struct {
	repo        favoriteRepo
	productRepo productRepo
}

type favoriteRepo interface {
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo favoriterepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, productRepo: products}
}

// Toggle flips the favorite membership for (user, product) and reports
// whether the product is now favorited. The product must still exist.
func (s *Service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return false, err
	}
	return s.repo.Toggle(ctx, userID, productID)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, userID)
}

func (s *Service) IDsForUser(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListProductIDs(ctx, userID)
}
