package httpserver

import (
	"context"
	"io"
	"log"
	"time"

	"freshmarket/internal/domain"
	taskrepo "freshmarket/internal/repository/task"
	categorysvc "freshmarket/internal/service/category"
	ordersvc "freshmarket/internal/service/order"
	productsvc "freshmarket/internal/service/product"
	salesvc "freshmarket/internal/service/sale"
	usersvc "freshmarket/internal/service/user"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// stubAuthSvc resolves any non-empty token to a fixed user.
type stubAuthSvc struct {
	user     *domain.User
	loginErr error
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return s.user, "test-token", nil
}

func (s *stubAuthSvc) Logout(_ context.Context, _ string) error { return nil }

func (s *stubAuthSvc) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if s.user == nil || token == "" {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

func (s *stubAuthSvc) SessionTTL() time.Duration { return time.Hour }

type stubUserSvc struct {
	users []domain.User
	err   error
}

func (s *stubUserSvc) List(_ context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserSvc) Create(_ context.Context, _ domain.User, in usersvc.CreateInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: "u-new", Username: in.Username, Name: in.Name, Role: in.Role}, nil
}

type stubCategorySvc struct {
	categories []domain.Category
	err        error
}

func (s *stubCategorySvc) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategorySvc) Create(_ context.Context, _ domain.User, in categorysvc.CreateInput) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: "c-new", Name: in.Name, Color: in.Color}, nil
}

func (s *stubCategorySvc) Delete(_ context.Context, _ domain.User, _ string) error {
	return s.err
}

type stubProductSvc struct {
	products []domain.Product
	product  *domain.Product
	status   productsvc.EditStatus
	err      error
}

func (s *stubProductSvc) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) Create(_ context.Context, _ domain.User, _ productsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Update(_ context.Context, _ domain.User, _ string, _ productsvc.UpdateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Delete(_ context.Context, _ domain.User, _ string) error {
	return s.err
}

func (s *stubProductSvc) IncreaseStock(_ context.Context, _ domain.User, _ string, _ float64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) EditStatusFor(_ context.Context, _ domain.User) (productsvc.EditStatus, error) {
	return s.status, s.err
}

type stubSaleSvc struct {
	sale  *domain.Sale
	sales []domain.Sale
	err   error
}

func (s *stubSaleSvc) Checkout(_ context.Context, _ domain.User, _ salesvc.CheckoutInput) (*domain.Sale, error) {
	return s.sale, s.err
}

func (s *stubSaleSvc) ListFor(_ context.Context, _ domain.User) ([]domain.Sale, error) {
	return s.sales, s.err
}

type stubOrderSvc struct {
	order  *domain.Order
	orders []domain.Order
	err    error
}

func (s *stubOrderSvc) Create(_ context.Context, _ ordersvc.CreateInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) Track(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderSvc) Approve(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) Cancel(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderSvc) Reopen(_ context.Context, _ domain.User, _ string) (*domain.Order, error) {
	return s.order, s.err
}

type stubTaskRepo struct {
	tasks []domain.Task
	err   error
}

func (s *stubTaskRepo) List(_ context.Context) ([]domain.Task, error) {
	return s.tasks, s.err
}

func (s *stubTaskRepo) ListVisible(_ context.Context, _ string, _ domain.Role) ([]domain.Task, error) {
	return s.tasks, s.err
}

func (s *stubTaskRepo) Create(_ context.Context, in taskrepo.CreateTaskInput) (*domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: "t-new", Title: in.Title, AssignedTo: in.AssignedTo, CreatedBy: in.CreatedBy}, nil
}

func (s *stubTaskRepo) SetCompleted(_ context.Context, id string, completed bool) (*domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: id, Completed: completed}, nil
}

func (s *stubTaskRepo) Delete(_ context.Context, _ string) error { return s.err }

type stubNotifRepo struct {
	notifications []domain.Notification
	err           error
}

func (s *stubNotifRepo) ListForUser(_ context.Context, _ string) ([]domain.Notification, error) {
	return s.notifications, s.err
}

func (s *stubNotifRepo) MarkRead(_ context.Context, _ string) error { return s.err }

type stubAuditRepo struct {
	logs []domain.AuditLog
	err  error
}

func (s *stubAuditRepo) List(_ context.Context) ([]domain.AuditLog, error) {
	return s.logs, s.err
}

// testDeps returns a Deps where every route works against empty stubs;
// individual tests swap in what they need.
func testDeps(user *domain.User) Deps {
	return Deps{
		AuthSvc:     &stubAuthSvc{user: user},
		UserSvc:     &stubUserSvc{},
		CategorySvc: &stubCategorySvc{},
		ProductSvc:  &stubProductSvc{},
		SaleSvc:     &stubSaleSvc{},
		OrderSvc:    &stubOrderSvc{},
		TaskRepo:    &stubTaskRepo{},
		NotifRepo:   &stubNotifRepo{},
		AuditRepo:   &stubAuditRepo{},
	}
}
