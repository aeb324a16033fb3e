package product

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateProductInput struct {
	SKU        string
	Name       string
	CategoryID *string
	Price      float64
	CostPrice  float64
	Stock      float64
	MinStock   float64
	Unit       domain.Unit
	Image      string
}

// UpdateProductInput carries a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	SKU        *string
	Name       *string
	CategoryID *string
	Price      *float64
	CostPrice  *float64
	Stock      *float64
	MinStock   *float64
	Unit       *domain.Unit
	Image      *string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	IncreaseStock(ctx context.Context, id string, quantity float64) (*domain.Product, error)
}
