// Package order implements the customer-facing reservation flow: public
// create/track by code, and the staff approve/cancel/reopen state machine.
package order

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"freshmarket/internal/domain"
	limitrepo "freshmarket/internal/repository/limit"
	orderrepo "freshmarket/internal/repository/order"
	productrepo "freshmarket/internal/repository/product"
)

var (
	// ErrNotPending is returned when approve/cancel targets an order that
	// already left the pending state.
	ErrNotPending = errors.New("order is not pending")
	// ErrAlreadyPending is returned when reopening an order that was never
	// closed.
	ErrAlreadyPending = errors.New("order is already pending")
	// ErrReopenLimitReached caps non-admin reopens per calendar date.
	ErrReopenLimitReached = errors.New("daily reopen limit reached")
)

// ApprovalError carries the lines that blocked an approval; the order stays
// pending and nothing is partially approved.
type ApprovalError struct {
	Items []domain.InsufficientItem
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Items))
}

type Service struct {
	repo     ordersRepo
	products productsRepo
	limits   limiter
}

type ordersRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus, approvedAt *time.Time) (*domain.Order, error)
}

type productsRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type limiter interface {
	TryRecordReopen(ctx context.Context, orderID, userID, date string, max int) (bool, error)
}

func New(repo orderrepo.Repository, products productrepo.Repository, limits limitrepo.Repository) *Service {
	return &Service{repo: repo, products: products, limits: limits}
}

type CreateItem struct {
	ProductID     string   `json:"productId" binding:"required"`
	Quantity      float64  `json:"quantity"`
	WeightInGrams *float64 `json:"weightInGrams"`
}

type CreateInput struct {
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerPhone string               `json:"customerPhone" binding:"required"`
	Items         []CreateItem         `json:"items" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// Create registers a pending reservation. The total is priced from current
// product prices and the customer gets an 8-character code to track it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.Invalid("order has no items")
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
		items = append(items, domain.CartItem{
			ProductID:   p.ID,
			Quantity:    qty,
			PriceAtSale: p.Price,
		})
	}

	return s.repo.Create(ctx, orderrepo.CreateOrderInput{
		OrderCode:     newOrderCode(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		Total:         domain.Subtotal(items),
		PaymentMethod: in.PaymentMethod,
	})
}

func (s *Service) Track(ctx context.Context, code string) (*domain.Order, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Approve moves a pending order to approved, but only if every line fits in
// current stock; otherwise the whole approval is rejected with the list of
// short lines. Stock itself is untouched: reservations are fulfilled over
// the counter as regular sales.
func (s *Service) Approve(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderPending {
		return nil, ErrNotPending
	}

	var short []domain.InsufficientItem
	for _, item := range o.Items {
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				short = append(short, domain.InsufficientItem{
					ProductID: item.ProductID,
					Requested: item.Quantity,
				})
				continue
			}
			return nil, err
		}
		if item.Quantity > p.Stock {
			short = append(short, domain.InsufficientItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   item.Quantity,
				Available:   p.Stock,
			})
		}
	}
	if len(short) > 0 {
		return nil, &ApprovalError{Items: short}
	}

	now := time.Now().UTC()
	return s.repo.SetStatus(ctx, id, []domain.OrderStatus{domain.OrderPending}, domain.OrderApproved, &now)
}

// Cancel rejects a pending order.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.SetStatus(ctx, id, []domain.OrderStatus{domain.OrderPending}, domain.OrderCancelled, nil)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Distinguish a missing order from a wrong-state one.
			if _, getErr := s.repo.GetByID(ctx, id); getErr == nil {
				return nil, ErrNotPending
			}
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Reopen puts an approved or cancelled order back in the pending queue.
// Admins may always reopen; everyone else gets domain.DailyReopenLimit per
// calendar date, recorded one row per reopen.
func (s *Service) Reopen(ctx context.Context, actor domain.User, id string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderPending {
		return nil, ErrAlreadyPending
	}

	if !actor.Role.IsAdmin() {
		ok, err := s.limits.TryRecordReopen(ctx, id, actor.ID, domain.DateKey(time.Now()), domain.DailyReopenLimit)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrReopenLimitReached
		}
	}

	return s.repo.SetStatus(ctx, id,
		[]domain.OrderStatus{domain.OrderApproved, domain.OrderCancelled},
		domain.OrderPending, nil)
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newOrderCode returns 8 random characters from an alphabet without the
// lookalikes 0/O and 1/I, since customers read these codes over the phone.
func newOrderCode() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// a code derived from the clock rather than crashing checkout.
		return fmt.Sprintf("%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf[:])
}
