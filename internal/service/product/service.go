package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
	categoryrepo "github.com/Bhargavikambam/GreenBag/internal/repository/category"
	productrepo "github.com/Bhargavikambam/GreenBag/internal/repository/product"
)

// Service exposes the catalog read paths: category pages, product detail and
// search. The catalog is read-only from here; writes happen via seed/import.
type Service struct {
	repo         productrepo.Repository
	categoryRepo categoryrepo.Repository
}

func New(repo productrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{repo: repo, categoryRepo: categories}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByCategoryName serves the category pages; the lookup is
// case-insensitive so /products?category=milk matches "Milk".
func (s *Service) ListByCategoryName(ctx context.Context, name string) ([]domain.Product, error) {
	c, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCategory(ctx, c.ID)
}

// Search matches the query against product and category names.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query required", domain.ErrInvalidInput)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}
