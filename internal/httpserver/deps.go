package httpserver

import (
	"context"
	"time"

	"freshmarket/internal/domain"
	taskrepo "freshmarket/internal/repository/task"
	categorysvc "freshmarket/internal/service/category"
	ordersvc "freshmarket/internal/service/order"
	productsvc "freshmarket/internal/service/product"
	salesvc "freshmarket/internal/service/sale"
	usersvc "freshmarket/internal/service/user"
)

// Deps carries everything the router needs. Fields are interfaces so tests
// can swap in stubs.
type Deps struct {
	AuthSvc     AuthService
	UserSvc     UserService
	CategorySvc CategoryService
	ProductSvc  ProductService
	SaleSvc     SaleService
	OrderSvc    OrderService
	TaskRepo    TaskRepository
	NotifRepo   NotificationRepository
	AuditRepo   AuditLogReader
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	SessionTTL() time.Duration
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, actor domain.User, in usersvc.CreateInput) (*domain.User, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, actor domain.User, in categorysvc.CreateInput) (*domain.Category, error)
	Delete(ctx context.Context, actor domain.User, id string) error
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, actor domain.User, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, actor domain.User, id string, in productsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.User, id string) error
	IncreaseStock(ctx context.Context, actor domain.User, id string, quantity float64) (*domain.Product, error)
	EditStatusFor(ctx context.Context, actor domain.User) (productsvc.EditStatus, error)
}

type SaleService interface {
	Checkout(ctx context.Context, actor domain.User, in salesvc.CheckoutInput) (*domain.Sale, error)
	ListFor(ctx context.Context, actor domain.User) ([]domain.Sale, error)
}

type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	Track(ctx context.Context, code string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Approve(ctx context.Context, id string) (*domain.Order, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
	Reopen(ctx context.Context, actor domain.User, id string) (*domain.Order, error)
}

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListVisible(ctx context.Context, userID string, role domain.Role) ([]domain.Task, error)
	Create(ctx context.Context, in taskrepo.CreateTaskInput) (*domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type AuditLogReader interface {
	List(ctx context.Context) ([]domain.AuditLog, error)
}
