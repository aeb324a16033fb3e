package sale

import (
	"context"
	"errors"
	"fmt"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	notifrepo "freshmarket/internal/repository/notification"
	salerepo "freshmarket/internal/repository/sale"
)

var (
	// ErrEmptyCart is returned when a checkout carries no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientPayment is returned for cash checkouts where the
	// amount received does not cover the total.
	ErrInsufficientPayment = errors.New("amount received is less than total")
)

// StockError names the product the cart asked too much of.
type StockError struct {
	ProductName string
	Available   float64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %g available", e.ProductName, e.Available)
}

type Service struct {
	repo     salesRepo
	products productsRepo
	audit    auditWriter
	notify   notifier
}

type salesRepo interface {
	Create(ctx context.Context, in salerepo.CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Sale, error)
}

type productsRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type auditWriter interface {
	Create(ctx context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error)
}

type notifier interface {
	Create(ctx context.Context, in notifrepo.CreateNotificationInput) (*domain.Notification, error)
}

func New(repo salerepo.Repository, products productsRepo, audit auditrepo.Repository, notify notifrepo.Repository) *Service {
	return &Service{repo: repo, products: products, audit: audit, notify: notify}
}

// CheckoutItem is one cart line as submitted by the till. For weighable
// products the till may send the weight in grams instead of a quantity.
type CheckoutItem struct {
	ProductID     string   `json:"productId" binding:"required"`
	Quantity      float64  `json:"quantity"`
	WeightInGrams *float64 `json:"weightInGrams"`
}

type CheckoutInput struct {
	Items          []CheckoutItem       `json:"items" binding:"required"`
	Discount       *domain.Discount     `json:"discount"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	AmountReceived *float64             `json:"amountReceived"`
}

// Checkout prices the cart server-side, validates payment and stock, and
// persists the sale. Stock is decremented exactly once, inside the same
// transaction that inserts the sale row.
func (s *Service) Checkout(ctx context.Context, actor domain.User, in CheckoutInput) (*domain.Sale, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if !in.PaymentMethod.Valid() {
		return nil, domain.Invalid("invalid payment method %q", in.PaymentMethod)
	}

	items := make([]domain.CartItem, 0, len(in.Items))
	for _, line := range in.Items {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		qty := line.Quantity
		if line.WeightInGrams != nil {
			qty = domain.KilosFromGrams(*line.WeightInGrams)
		}
		if qty <= 0 {
			return nil, domain.Invalid("invalid quantity for %s", p.Name)
		}
		if qty > p.Stock {
			return nil, &StockError{ProductName: p.Name, Available: p.Stock}
		}

		items = append(items, domain.CartItem{
			ProductID:   p.ID,
			Quantity:    qty,
			PriceAtSale: p.Price,
		})
	}

	subtotal := domain.Subtotal(items)
	var discountAmount float64
	if in.Discount != nil {
		discountAmount = in.Discount.Amount(subtotal)
	}
	total := domain.SaleTotal(subtotal, discountAmount)

	var received, change *float64
	if in.PaymentMethod == domain.PayCash {
		if in.AmountReceived == nil || *in.AmountReceived < total {
			return nil, ErrInsufficientPayment
		}
		c := domain.Change(total, *in.AmountReceived)
		received = in.AmountReceived
		change = &c
	}

	created, err := s.repo.Create(ctx, salerepo.CreateSaleInput{
		UserID:         actor.ID,
		Total:          total,
		AmountReceived: received,
		Change:         change,
		PaymentMethod:  in.PaymentMethod,
		Items:          items,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "CREATE_SALE",
		EntityType: "sale",
		EntityID:   created.ID,
		Details: map[string]interface{}{
			"total":         created.Total,
			"paymentMethod": created.PaymentMethod,
			"itemCount":     len(created.Items),
		},
	})
	if err != nil {
		return nil, err
	}

	uid := actor.ID
	_, err = s.notify.Create(ctx, notifrepo.CreateNotificationInput{
		UserID:   &uid,
		Type:     domain.NotifySuccess,
		Message:  fmt.Sprintf("Venda realizada com sucesso! Total: R$ %.2f", created.Total),
		Metadata: map[string]interface{}{"saleId": created.ID},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListFor returns all sales for admins and managers, and only the seller's
// own sales otherwise.
func (s *Service) ListFor(ctx context.Context, actor domain.User) ([]domain.Sale, error) {
	if actor.Role == domain.RoleSeller {
		return s.repo.ListByUser(ctx, actor.ID)
	}
	return s.repo.List(ctx)
}
