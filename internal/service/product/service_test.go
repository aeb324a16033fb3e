package product

import (
	"context"
	"testing"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	notifrepo "freshmarket/internal/repository/notification"
	productrepo "freshmarket/internal/repository/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductsRepo struct {
	products map[string]*domain.Product
	created  *productrepo.CreateProductInput
	updated  *productrepo.UpdateProductInput
	deleted  []string
}

func (s *stubProductsRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProductsRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *stubProductsRepo) Create(_ context.Context, in productrepo.CreateProductInput) (*domain.Product, error) {
	s.created = &in
	return &domain.Product{ID: "p-new", SKU: in.SKU, Name: in.Name, Price: in.Price, Stock: in.Stock, Unit: in.Unit}, nil
}

func (s *stubProductsRepo) Update(_ context.Context, id string, in productrepo.UpdateProductInput) (*domain.Product, error) {
	if _, ok := s.products[id]; !ok {
		return nil, domain.ErrNotFound
	}
	s.updated = &in
	return s.products[id], nil
}

func (s *stubProductsRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubProductsRepo) IncreaseStock(_ context.Context, id string, quantity float64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Stock += quantity
	return p, nil
}

type stubLimiter struct {
	count int
	max   int
	calls int
}

func (s *stubLimiter) TryIncrementEdit(_ context.Context, _, _ string, max int) (int, bool, error) {
	s.calls++
	s.max = max
	if s.count >= max {
		return s.count, false, nil
	}
	s.count++
	return s.count, true, nil
}

func (s *stubLimiter) EditCount(_ context.Context, _, _ string) (int, error) {
	return s.count, nil
}

type stubAudit struct {
	entries []auditrepo.CreateAuditLogInput
}

func (s *stubAudit) Create(_ context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error) {
	s.entries = append(s.entries, in)
	return &domain.AuditLog{ID: 1}, nil
}

type stubNotify struct {
	notes []notifrepo.CreateNotificationInput
}

func (s *stubNotify) Create(_ context.Context, in notifrepo.CreateNotificationInput) (*domain.Notification, error) {
	s.notes = append(s.notes, in)
	return &domain.Notification{ID: "notif-1"}, nil
}

func newTestService(products map[string]*domain.Product) (*Service, *stubProductsRepo, *stubLimiter, *stubAudit, *stubNotify) {
	repo := &stubProductsRepo{products: products}
	limits := &stubLimiter{}
	audit := &stubAudit{}
	notify := &stubNotify{}
	return &Service{repo: repo, limits: limits, audit: audit, notify: notify}, repo, limits, audit, notify
}

func validCreate() CreateInput {
	return CreateInput{SKU: "FRUTA001", Name: "Banana Prata", Price: 6.50, Unit: domain.UnitKilo}
}

func TestCreate_SellerConsumesDailyEdit(t *testing.T) {
	svc, repo, limits, audit, notify := newTestService(nil)
	actor := domain.User{ID: "u1", Role: domain.RoleSeller}

	p, err := svc.Create(context.Background(), actor, validCreate())
	require.NoError(t, err)
	assert.Equal(t, "Banana Prata", p.Name)
	assert.Equal(t, 1, limits.calls)
	assert.Equal(t, 5, limits.max)
	require.NotNil(t, repo.created)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "CREATE_PRODUCT", audit.entries[0].Action)
	// Only admin creations broadcast a notification.
	assert.Empty(t, notify.notes)
}

func TestCreate_SixthSellerEditRejected(t *testing.T) {
	svc, repo, limits, _, _ := newTestService(nil)
	actor := domain.User{ID: "u1", Role: domain.RoleSeller}

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), actor, validCreate())
		require.NoError(t, err)
	}
	repo.created = nil

	_, err := svc.Create(context.Background(), actor, validCreate())
	assert.ErrorIs(t, err, ErrEditLimitReached)
	assert.Nil(t, repo.created)
	assert.Equal(t, 5, limits.count)
}

func TestCreate_AdminBypassesLimiterAndBroadcasts(t *testing.T) {
	svc, _, limits, _, notify := newTestService(nil)
	actor := domain.User{ID: "a1", Role: domain.RoleAdmin}

	for i := 0; i < 30; i++ {
		_, err := svc.Create(context.Background(), actor, validCreate())
		require.NoError(t, err)
	}
	assert.Equal(t, 0, limits.calls)
	require.Len(t, notify.notes, 30)
	assert.Nil(t, notify.notes[0].UserID)
	assert.Equal(t, "Novo produto adicionado: Banana Prata", notify.notes[0].Message)
}

func TestCreate_InvalidUnitDoesNotConsumeEdit(t *testing.T) {
	svc, _, limits, _, _ := newTestService(nil)
	in := validCreate()
	in.Unit = "litros"

	_, err := svc.Create(context.Background(), domain.User{ID: "u1", Role: domain.RoleSeller}, in)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, limits.calls)
}

func TestUpdate_ManagerGets20Edits(t *testing.T) {
	svc, _, limits, _, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz"},
	})
	name := "Arroz Integral"
	_, err := svc.Update(context.Background(), domain.User{ID: "m1", Role: domain.RoleManager}, "p1", UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 20, limits.max)
}

func TestDelete_BroadcastsWarning(t *testing.T) {
	svc, repo, _, audit, notify := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Queijo Minas"},
	})
	err := svc.Delete(context.Background(), domain.User{ID: "a1", Role: domain.RoleAdmin}, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, repo.deleted)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "DELETE_PRODUCT", audit.entries[0].Action)
	require.Len(t, notify.notes, 1)
	assert.Equal(t, domain.NotifyWarning, notify.notes[0].Type)
	assert.Equal(t, "Produto removido: Queijo Minas", notify.notes[0].Message)
}

func TestIncreaseStock_NotGatedByLimiter(t *testing.T) {
	svc, _, limits, audit, _ := newTestService(map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Arroz", Stock: 10},
	})
	limits.count = 5 // seller allowance already spent

	p, err := svc.IncreaseStock(context.Background(), domain.User{ID: "u1", Role: domain.RoleSeller}, "p1", 15)
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.Stock)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "INCREASE_STOCK", audit.entries[0].Action)
}

func TestIncreaseStock_RejectsNonPositive(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)
	_, err := svc.IncreaseStock(context.Background(), domain.User{ID: "u1", Role: domain.RoleSeller}, "p1", 0)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestEditStatusFor(t *testing.T) {
	svc, _, limits, _, _ := newTestService(nil)
	limits.count = 5

	st, err := svc.EditStatusFor(context.Background(), domain.User{ID: "u1", Role: domain.RoleSeller})
	require.NoError(t, err)
	assert.Equal(t, EditStatus{Count: 5, Limit: 5, CanEdit: false}, st)

	st, err = svc.EditStatusFor(context.Background(), domain.User{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, st.CanEdit)
}
