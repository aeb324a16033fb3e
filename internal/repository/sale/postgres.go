package sale

import (
	"context"
	"io"
	"log"

	"freshmarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const saleColumns = `id::text, user_id::text, total, amount_received, change, payment_method, items, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateSaleInput) (*domain.Sale, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertQ = `
INSERT INTO sales (user_id, total, amount_received, change, payment_method, items)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + saleColumns
	var s domain.Sale
	if err := tx.QueryRow(ctx, insertQ,
		in.UserID, in.Total, in.AmountReceived, in.Change, in.PaymentMethod, in.Items,
	).Scan(&s.ID, &s.UserID, &s.Total, &s.AmountReceived, &s.Change, &s.PaymentMethod, &s.Items, &s.CreatedAt); err != nil {
		r.logger.Printf("sale repo: insert user_id=%s error=%v", in.UserID, err)
		return nil, err
	}

	// Guarded decrement: a concurrent sale of the same product cannot push
	// stock below zero, the whole checkout rolls back instead.
	const decrementQ = `
UPDATE products
SET stock = stock - $2, updated_at = now()
WHERE id = $1 AND stock >= $2
`
	for _, item := range in.Items {
		cmd, err := tx.Exec(ctx, decrementQ, item.ProductID, item.Quantity)
		if err != nil {
			r.logger.Printf("sale repo: decrement product_id=%s error=%v", item.ProductID, err)
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.ErrInsufficientStock
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("sale repo: created id=%s total=%.2f items=%d", s.ID, s.Total, len(s.Items))
	return &s, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Sale, error) {
	const q = `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC`
	return r.fetchSales(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Sale, error) {
	const q = `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY created_at DESC`
	return r.fetchSales(ctx, q, userID)
}

func (r *postgresRepo) fetchSales(ctx context.Context, q string, args ...interface{}) ([]domain.Sale, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.Total, &s.AmountReceived, &s.Change, &s.PaymentMethod, &s.Items, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
