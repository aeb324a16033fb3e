package product

import (
	"context"
	"errors"
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

const productColumns = `id::text, sku, name, category_id::text, price, cost_price, stock, min_stock, unit, image, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, category_id, price, cost_price, stock, min_stock, unit, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + productColumns
	var p domain.Product
	err := scanProduct(r.pool.QueryRow(ctx, q,
		in.SKU, in.Name, in.CategoryID, in.Price, in.CostPrice, in.Stock, in.MinStock, in.Unit, in.Image,
	), &p)
	if err != nil {
		r.logger.Printf("product repo: create sku=%s error=%v", in.SKU, err)
		return nil, err
	}
	r.logger.Printf("product repo: created sku=%s id=%s", p.SKU, p.ID)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET sku         = COALESCE($2, sku),
    name        = COALESCE($3, name),
    category_id = COALESCE($4::uuid, category_id),
    price       = COALESCE($5, price),
    cost_price  = COALESCE($6, cost_price),
    stock       = COALESCE($7, stock),
    min_stock   = COALESCE($8, min_stock),
    unit        = COALESCE($9, unit),
    image       = COALESCE($10, image),
    updated_at  = now()
WHERE id = $1
RETURNING ` + productColumns
	var p domain.Product
	err := scanProduct(r.pool.QueryRow(ctx, q,
		id, in.SKU, in.Name, in.CategoryID, in.Price, in.CostPrice, in.Stock, in.MinStock, in.Unit, in.Image,
	), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) IncreaseStock(ctx context.Context, id string, quantity float64) (*domain.Product, error) {
	const q = `
UPDATE products
SET stock = stock + $2, updated_at = now()
WHERE id = $1
RETURNING ` + productColumns
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, id, quantity), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: increase stock id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.CategoryID,
		&p.Price, &p.CostPrice, &p.Stock, &p.MinStock,
		&p.Unit, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
}
