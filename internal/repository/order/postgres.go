package order

import (
	"context"
	"errors"
	"time"

	"freshmarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const orderColumns = `id::text, order_code, customer_name, customer_phone, items, total, status, payment_method, approved_at, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	const q = `
INSERT INTO orders (order_code, customer_name, customer_phone, items, total, payment_method)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + orderColumns
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q,
		in.OrderCode, in.CustomerName, in.CustomerPhone, in.Items, in.Total, in.PaymentMethod,
	), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.fetchOrder(ctx, q, id)
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE order_code = $1`
	return r.fetchOrder(ctx, q, code)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *postgresRepo) SetStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus, approvedAt *time.Time) (*domain.Order, error) {
	fromStrs := make([]string, 0, len(from))
	for _, s := range from {
		fromStrs = append(fromStrs, string(s))
	}

	const q = `
UPDATE orders
SET status = $2, approved_at = $3
WHERE id = $1 AND status = ANY($4)
RETURNING ` + orderColumns
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id, to, approvedAt, fromStrs), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) fetchOrder(ctx context.Context, q string, arg interface{}) (*domain.Order, error) {
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, arg), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID, &o.OrderCode, &o.CustomerName, &o.CustomerPhone,
		&o.Items, &o.Total, &o.Status, &o.PaymentMethod,
		&o.ApprovedAt, &o.CreatedAt,
	)
}
