package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type userSeed struct {
	Name     string
	Username string
	Password string
	Role     string
	Avatar   string
}

type categorySeed struct {
	Name  string
	Color string
}

type productSeed struct {
	SKU      string
	Name     string
	Category string
	Price    float64
	Cost     float64
	Stock    float64
	MinStock float64
	Unit     string
}

// Apply inserts demo staff, categories and products for manual testing.
// It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	users := []userSeed{
		{Name: "Administrador", Username: "admin", Password: "senha123", Role: "admin", Avatar: "👨‍💼"},
		{Name: "João Silva", Username: "joao", Password: "senha123", Role: "seller", Avatar: "👨"},
		{Name: "Maria Santos", Username: "maria", Password: "senha123", Role: "manager", Avatar: "👩"},
	}
	for _, u := range users {
		if err := upsertUser(ctx, pool, u); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Username, err)
		}
	}

	categories := []categorySeed{
		{Name: "Frutas", Color: "bg-red-500"},
		{Name: "Verduras", Color: "bg-green-500"},
		{Name: "Grãos", Color: "bg-yellow-600"},
		{Name: "Bebidas", Color: "bg-blue-500"},
		{Name: "Laticínios", Color: "bg-orange-400"},
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, cat := range categories {
		id, err := ensureCategory(ctx, pool, cat)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", cat.Name, err)
		}
		categoryIDs[cat.Name] = id
	}

	products := []productSeed{
		{SKU: "FRUTA001", Name: "Banana Prata", Category: "Frutas", Price: 6.50, Cost: 4.00, Stock: 25, MinStock: 5, Unit: "kg"},
		{SKU: "FRUTA002", Name: "Maçã Gala", Category: "Frutas", Price: 9.90, Cost: 6.50, Stock: 18, MinStock: 5, Unit: "kg"},
		{SKU: "VERD001", Name: "Alface Crespa", Category: "Verduras", Price: 3.50, Cost: 1.80, Stock: 30, MinStock: 10, Unit: "un"},
		{SKU: "VERD002", Name: "Tomate Italiano", Category: "Verduras", Price: 8.90, Cost: 5.50, Stock: 22, MinStock: 5, Unit: "kg"},
		{SKU: "GRAO001", Name: "Arroz Branco 5kg", Category: "Grãos", Price: 27.90, Cost: 21.00, Stock: 40, MinStock: 10, Unit: "pack"},
		{SKU: "GRAO002", Name: "Feijão Carioca 1kg", Category: "Grãos", Price: 8.50, Cost: 6.00, Stock: 55, MinStock: 15, Unit: "pack"},
		{SKU: "BEB001", Name: "Suco de Laranja 1L", Category: "Bebidas", Price: 12.90, Cost: 8.50, Stock: 24, MinStock: 6, Unit: "un"},
		{SKU: "BEB002", Name: "Água Mineral 500ml", Category: "Bebidas", Price: 2.50, Cost: 1.20, Stock: 120, MinStock: 30, Unit: "un"},
		{SKU: "LAT001", Name: "Queijo Minas", Category: "Laticínios", Price: 42.00, Cost: 30.00, Stock: 8, MinStock: 2, Unit: "kg"},
		{SKU: "LAT002", Name: "Leite Integral 1L", Category: "Laticínios", Price: 5.90, Cost: 4.20, Stock: 60, MinStock: 20, Unit: "box"},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryIDs[p.Category], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, u userSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, username, password_hash, role, avatar)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (username) DO UPDATE
SET name = EXCLUDED.name,
    role = EXCLUDED.role,
    avatar = EXCLUDED.avatar
`
	_, err = pool.Exec(ctx, q, u.Name, u.Username, string(hash), u.Role, u.Avatar)
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (string, error) {
	const sel = `SELECT id::text FROM categories WHERE name = $1`
	var id string
	err := pool.QueryRow(ctx, sel, c.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	const ins = `INSERT INTO categories (name, color) VALUES ($1, $2) RETURNING id::text`
	if err := pool.QueryRow(ctx, ins, c.Name, c.Color).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (sku, name, category_id, price, cost_price, stock, min_stock, unit)
VALUES ($1, $2, $3::uuid, $4, $5, $6, $7, $8)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    category_id = EXCLUDED.category_id,
    price = EXCLUDED.price,
    cost_price = EXCLUDED.cost_price,
    min_stock = EXCLUDED.min_stock,
    unit = EXCLUDED.unit,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, p.SKU, p.Name, categoryID, p.Price, p.Cost, p.Stock, p.MinStock, p.Unit)
	return err
}
