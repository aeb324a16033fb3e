package order

import (
	"context"
	"time"

	"freshmarket/internal/domain"
)

type CreateOrderInput struct {
	OrderCode     string
	CustomerName  string
	CustomerPhone string
	Items         []domain.CartItem
	Total         float64
	PaymentMethod domain.PaymentMethod
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// SetStatus moves the order from one of the expected statuses to the
	// new one; domain.ErrNotFound when the order is missing or not in an
	// expected status.
	SetStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus, approvedAt *time.Time) (*domain.Order, error)
}
