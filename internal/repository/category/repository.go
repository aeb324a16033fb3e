package category

import (
	"context"

	"freshmarket/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, color string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
