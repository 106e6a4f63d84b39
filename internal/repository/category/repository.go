package category

import (
	"context"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Upsert(ctx context.Context, name string) (*domain.Category, error)
}
