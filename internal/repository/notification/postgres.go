package notification

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

const notificationColumns = `id::text, user_id::text, type, message, read, metadata, created_at`

func (r *postgresRepo) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	const q = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1 OR user_id IS NULL
ORDER BY created_at DESC
LIMIT 50
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.Metadata, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error) {
	const q = `
INSERT INTO notifications (user_id, type, message, metadata)
VALUES ($1, $2, $3, $4)
RETURNING ` + notificationColumns
	var n domain.Notification
	if err := r.pool.QueryRow(ctx, q, in.UserID, in.Type, in.Message, in.Metadata).Scan(
		&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.Metadata, &n.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresRepo) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
