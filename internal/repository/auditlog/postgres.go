package auditlog

import (
	"context"

	"freshmarket/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const auditColumns = `id, user_id::text, action, entity_type, entity_id, details, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.AuditLog, error) {
	const q = `SELECT ` + auditColumns + ` FROM audit_logs ORDER BY created_at DESC LIMIT 100`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditLog
	for rows.Next() {
		var l domain.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateAuditLogInput) (*domain.AuditLog, error) {
	const q = `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, details)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + auditColumns
	var l domain.AuditLog
	if err := r.pool.QueryRow(ctx, q, in.UserID, in.Action, in.EntityType, in.EntityID, in.Details).Scan(
		&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
