package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	limitrepo "freshmarket/internal/repository/limit"
	notifrepo "freshmarket/internal/repository/notification"
	productrepo "freshmarket/internal/repository/product"
)

// ErrEditLimitReached is returned when a non-admin has used up the daily
// product-edit allowance for their role.
var ErrEditLimitReached = errors.New("daily edit limit reached")

type Service struct {
	repo   productsRepo
	limits limiter
	audit  auditWriter
	notify notifier
}

type productsRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	IncreaseStock(ctx context.Context, id string, quantity float64) (*domain.Product, error)
}

type limiter interface {
	TryIncrementEdit(ctx context.Context, userID, date string, max int) (int, bool, error)
	EditCount(ctx context.Context, userID, date string) (int, error)
}

type auditWriter interface {
	Create(ctx context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error)
}

type notifier interface {
	Create(ctx context.Context, in notifrepo.CreateNotificationInput) (*domain.Notification, error)
}

func New(repo productrepo.Repository, limits limitrepo.Repository, audit auditrepo.Repository, notify notifrepo.Repository) *Service {
	return &Service{repo: repo, limits: limits, audit: audit, notify: notify}
}

type CreateInput struct {
	SKU        string      `json:"sku" binding:"required"`
	Name       string      `json:"name" binding:"required"`
	CategoryID *string     `json:"categoryId"`
	Price      float64     `json:"price" binding:"required,gt=0"`
	CostPrice  float64     `json:"costPrice"`
	Stock      float64     `json:"stock"`
	MinStock   *float64    `json:"minStock"`
	Unit       domain.Unit `json:"unit" binding:"required"`
	Image      string      `json:"image"`
}

type UpdateInput struct {
	SKU        *string      `json:"sku"`
	Name       *string      `json:"name"`
	CategoryID *string      `json:"categoryId"`
	Price      *float64     `json:"price"`
	CostPrice  *float64     `json:"costPrice"`
	Stock      *float64     `json:"stock"`
	MinStock   *float64     `json:"minStock"`
	Unit       *domain.Unit `json:"unit"`
	Image      *string      `json:"image"`
}

// EditStatus is what the edit-count endpoint reports for the current user.
type EditStatus struct {
	Count   int  `json:"count"`
	Limit   int  `json:"limit"`
	CanEdit bool `json:"canEdit"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a product. Non-admin actors consume one daily edit; the call
// fails with ErrEditLimitReached before anything is written once the
// allowance is spent.
func (s *Service) Create(ctx context.Context, actor domain.User, in CreateInput) (*domain.Product, error) {
	if !in.Unit.Valid() {
		return nil, domain.Invalid("invalid unit %q", in.Unit)
	}
	if err := s.consumeEdit(ctx, actor); err != nil {
		return nil, err
	}

	minStock := 5.0
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	p, err := s.repo.Create(ctx, productrepo.CreateProductInput{
		SKU:        strings.TrimSpace(in.SKU),
		Name:       strings.TrimSpace(in.Name),
		CategoryID: in.CategoryID,
		Price:      in.Price,
		CostPrice:  in.CostPrice,
		Stock:      in.Stock,
		MinStock:   minStock,
		Unit:       in.Unit,
		Image:      in.Image,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "CREATE_PRODUCT",
		EntityType: "product",
		EntityID:   p.ID,
		Details:    map[string]interface{}{"name": p.Name, "sku": p.SKU},
	})
	if err != nil {
		return nil, err
	}

	if actor.Role.IsAdmin() {
		_, err = s.notify.Create(ctx, notifrepo.CreateNotificationInput{
			Type:     domain.NotifyInfo,
			Message:  fmt.Sprintf("Novo produto adicionado: %s", p.Name),
			Metadata: map[string]interface{}{"productId": p.ID},
		})
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Update applies a partial product update under the same daily-edit gate.
func (s *Service) Update(ctx context.Context, actor domain.User, id string, in UpdateInput) (*domain.Product, error) {
	if in.Unit != nil && !in.Unit.Valid() {
		return nil, domain.Invalid("invalid unit %q", *in.Unit)
	}
	if err := s.consumeEdit(ctx, actor); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, productrepo.UpdateProductInput{
		SKU:        in.SKU,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Price:      in.Price,
		CostPrice:  in.CostPrice,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Unit:       in.Unit,
		Image:      in.Image,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "UPDATE_PRODUCT",
		EntityType: "product",
		EntityID:   p.ID,
		Details:    map[string]interface{}{"name": p.Name},
	})
	if err != nil {
		return nil, err
	}

	if actor.Role.IsAdmin() {
		_, err = s.notify.Create(ctx, notifrepo.CreateNotificationInput{
			Type:     domain.NotifyInfo,
			Message:  fmt.Sprintf("Produto atualizado: %s", p.Name),
			Metadata: map[string]interface{}{"productId": p.ID},
		})
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Delete removes a product (admin only, enforced at the route) and
// broadcasts a warning so shop staff notice it is gone.
func (s *Service) Delete(ctx context.Context, actor domain.User, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "DELETE_PRODUCT",
		EntityType: "product",
		EntityID:   id,
		Details:    map[string]interface{}{"name": p.Name},
	})
	if err != nil {
		return err
	}

	_, err = s.notify.Create(ctx, notifrepo.CreateNotificationInput{
		Type:     domain.NotifyWarning,
		Message:  fmt.Sprintf("Produto removido: %s", p.Name),
		Metadata: map[string]interface{}{"productId": p.ID},
	})
	return err
}

// IncreaseStock adds quantity to the shelf count. Restocking is not gated
// by the daily edit limiter.
func (s *Service) IncreaseStock(ctx context.Context, actor domain.User, id string, quantity float64) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	p, err := s.repo.IncreaseStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "INCREASE_STOCK",
		EntityType: "product",
		EntityID:   p.ID,
		Details:    map[string]interface{}{"name": p.Name, "quantity": quantity, "stock": p.Stock},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EditStatusFor reports the actor's daily edit usage for the UI.
func (s *Service) EditStatusFor(ctx context.Context, actor domain.User) (EditStatus, error) {
	limit := actor.Role.DailyEditLimit()
	count, err := s.limits.EditCount(ctx, actor.ID, domain.DateKey(time.Now()))
	if err != nil {
		return EditStatus{}, err
	}
	return EditStatus{
		Count:   count,
		Limit:   limit,
		CanEdit: actor.Role.IsAdmin() || count < limit,
	}, nil
}

func (s *Service) consumeEdit(ctx context.Context, actor domain.User) error {
	if actor.Role.IsAdmin() {
		return nil
	}
	_, ok, err := s.limits.TryIncrementEdit(ctx, actor.ID, domain.DateKey(time.Now()), actor.Role.DailyEditLimit())
	if err != nil {
		return err
	}
	if !ok {
		return ErrEditLimitReached
	}
	return nil
}
