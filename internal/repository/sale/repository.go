package sale

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateSaleInput struct {
	UserID         string
	Total          float64
	AmountReceived *float64
	Change         *float64
	PaymentMethod  domain.PaymentMethod
	Items          []domain.CartItem
}

type Repository interface {
	// Create inserts the sale and decrements stock for every item in one
	// transaction. It fails with domain.ErrInsufficientStock if any line
	// would drive stock negative, leaving nothing written.
	Create(ctx context.Context, in CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Sale, error)
}
