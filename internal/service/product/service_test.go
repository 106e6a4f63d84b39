package product

import (
	"context"
	"errors"
	"testing"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type stubProductRepo struct {
	product  *domain.Product
	products []domain.Product
	err      error

	lastCategoryID string
	lastQuery      string
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubProductRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	s.lastCategoryID = categoryID
	return s.products, s.err
}

func (s *stubProductRepo) Search(_ context.Context, query string) ([]domain.Product, error) {
	s.lastQuery = query
	return s.products, s.err
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

type stubCategoryRepo struct {
	category   *domain.Category
	categories []domain.Category
	err        error

	lastName string
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	s.lastName = name
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubCategoryRepo) Upsert(_ context.Context, name string) (*domain.Category, error) {
	return &domain.Category{ID: "c1", Name: name}, nil
}

func TestListByCategoryName(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Whole Milk"}}}
	categories := &stubCategoryRepo{category: &domain.Category{ID: "c1", Name: "Milk"}}
	svc := New(products, categories)

	result, err := svc.ListByCategoryName(context.Background(), "milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if categories.lastName != "milk" || products.lastCategoryID != "c1" {
		t.Fatalf("unexpected lookups name=%q category=%q", categories.lastName, products.lastCategoryID)
	}
	if len(result) != 1 {
		t.Fatalf("unexpected products %+v", result)
	}
}

func TestListByUnknownCategory(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{err: domain.ErrNotFound})
	_, err := svc.ListByCategoryName(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})
	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), q)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", q, err)
		}
	}
}

func TestSearchTrimsQuery(t *testing.T) {
	products := &stubProductRepo{}
	svc := New(products, &stubCategoryRepo{})

	if _, err := svc.Search(context.Background(), "  apple  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products.lastQuery != "apple" {
		t.Fatalf("expected trimmed query, got %q", products.lastQuery)
	}
}
