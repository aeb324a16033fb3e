package sale

import (
	"context"
	"errors"
	"testing"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	notifrepo "freshmarket/internal/repository/notification"
	salerepo "freshmarket/internal/repository/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSalesRepo struct {
	created  *salerepo.CreateSaleInput
	sales    []domain.Sale
	byUser   []domain.Sale
	creatErr error
}

func (s *stubSalesRepo) Create(_ context.Context, in salerepo.CreateSaleInput) (*domain.Sale, error) {
	if s.creatErr != nil {
		return nil, s.creatErr
	}
	s.created = &in
	return &domain.Sale{
		ID:             "sale-1",
		UserID:         in.UserID,
		Total:          in.Total,
		AmountReceived: in.AmountReceived,
		Change:         in.Change,
		PaymentMethod:  in.PaymentMethod,
		Items:          in.Items,
	}, nil
}

func (s *stubSalesRepo) List(_ context.Context) ([]domain.Sale, error) {
	return s.sales, nil
}

func (s *stubSalesRepo) ListByUser(_ context.Context, _ string) ([]domain.Sale, error) {
	return s.byUser, nil
}

type stubProductsRepo struct {
	products map[string]*domain.Product
}

func (s *stubProductsRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubAudit struct {
	entries []auditrepo.CreateAuditLogInput
}

func (s *stubAudit) Create(_ context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error) {
	s.entries = append(s.entries, in)
	return &domain.AuditLog{ID: 1, Action: in.Action}, nil
}

type stubNotify struct {
	notes []notifrepo.CreateNotificationInput
}

func (s *stubNotify) Create(_ context.Context, in notifrepo.CreateNotificationInput) (*domain.Notification, error) {
	s.notes = append(s.notes, in)
	return &domain.Notification{ID: "notif-1", Message: in.Message}, nil
}

func newTestService(products map[string]*domain.Product) (*Service, *stubSalesRepo, *stubAudit, *stubNotify) {
	repo := &stubSalesRepo{}
	audit := &stubAudit{}
	notify := &stubNotify{}
	svc := &Service{
		repo:     repo,
		products: &stubProductsRepo{products: products},
		audit:    audit,
		notify:   notify,
	}
	return svc, repo, audit, notify
}

func seller() domain.User {
	return domain.User{ID: "user-1", Username: "joao", Role: domain.RoleSeller}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, _, _ := newTestService(nil)
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{PaymentMethod: domain.PayCash})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_CashUnderpaymentRejected(t *testing.T) {
	svc, repo, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz", Price: 27.90, Stock: 10},
	})
	received := 20.0
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:          []CheckoutItem{{ProductID: "p1", Quantity: 1}},
		PaymentMethod:  domain.PayCash,
		AmountReceived: &received,
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Nil(t, repo.created)
}

func TestCheckout_CashMissingAmountRejected(t *testing.T) {
	svc, _, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz", Price: 27.90, Stock: 10},
	})
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: domain.PayCash,
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	svc, repo, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Queijo Minas", Price: 42, Stock: 2},
	})
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "p1", Quantity: 3}},
		PaymentMethod: domain.PayCard,
	})
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Queijo Minas", stockErr.ProductName)
	assert.Equal(t, 2.0, stockErr.Available)
	assert.Nil(t, repo.created)
}

func TestCheckout_PricesServerSideWithDiscountAndChange(t *testing.T) {
	svc, repo, audit, notify := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz", Price: 10, Stock: 50},
	})
	received := 30.0
	sale, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:          []CheckoutItem{{ProductID: "p1", Quantity: 3}},
		Discount:       &domain.Discount{Type: domain.DiscountPercentage, Value: 10},
		PaymentMethod:  domain.PayCash,
		AmountReceived: &received,
	})
	require.NoError(t, err)

	assert.Equal(t, 27.0, sale.Total)
	require.NotNil(t, sale.Change)
	assert.Equal(t, 3.0, *sale.Change)
	require.NotNil(t, repo.created)
	assert.Equal(t, 10.0, repo.created.Items[0].PriceAtSale)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "CREATE_SALE", audit.entries[0].Action)

	require.Len(t, notify.notes, 1)
	require.NotNil(t, notify.notes[0].UserID)
	assert.Equal(t, "user-1", *notify.notes[0].UserID)
}

func TestCheckout_WeighableConvertsGrams(t *testing.T) {
	svc, repo, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Banana Prata", Price: 6.50, Stock: 10, Unit: domain.UnitKilo},
	})
	grams := 500.0
	sale, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "p1", WeightInGrams: &grams}},
		PaymentMethod: domain.PayPix,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, repo.created.Items[0].Quantity)
	assert.Equal(t, 3.25, sale.Total)
	// Non-cash payment carries no change.
	assert.Nil(t, sale.AmountReceived)
	assert.Nil(t, sale.Change)
}

func TestCheckout_UnknownProduct(t *testing.T) {
	svc, _, _, _ := newTestService(nil)
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "missing", Quantity: 1}},
		PaymentMethod: domain.PayCard,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckout_InvalidPaymentMethod(t *testing.T) {
	svc, _, _, _ := newTestService(nil)
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: "cheque",
	})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestListFor_SellerSeesOwnSalesOnly(t *testing.T) {
	svc, repo, _, _ := newTestService(nil)
	repo.sales = []domain.Sale{{ID: "all-1"}, {ID: "all-2"}}
	repo.byUser = []domain.Sale{{ID: "own-1"}}

	own, err := svc.ListFor(context.Background(), seller())
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.ListFor(context.Background(), domain.User{ID: "m", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCheckout_RepoErrorPropagates(t *testing.T) {
	svc, repo, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz", Price: 10, Stock: 50},
	})
	repo.creatErr = errors.New("boom")
	_, err := svc.Checkout(context.Background(), seller(), CheckoutInput{
		Items:         []CheckoutItem{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: domain.PayCard,
	})
	assert.EqualError(t, err, "boom")
}
