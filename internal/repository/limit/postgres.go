package limit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) TryIncrementEdit(ctx context.Context, userID, date string, max int) (int, bool, error) {
	const q = `
INSERT INTO daily_edits (user_id, date, edit_count)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, date) DO UPDATE
SET edit_count = daily_edits.edit_count + 1
WHERE daily_edits.edit_count < $3
RETURNING edit_count
`
	var count int
	err := r.pool.QueryRow(ctx, q, userID, date, max).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conditional update declined: ceiling already reached.
			current, cerr := r.EditCount(ctx, userID, date)
			if cerr != nil {
				return 0, false, cerr
			}
			return current, false, nil
		}
		return 0, false, err
	}
	return count, true, nil
}

func (r *postgresRepo) EditCount(ctx context.Context, userID, date string) (int, error) {
	const q = `
SELECT edit_count
FROM daily_edits
WHERE user_id = $1 AND date = $2
`
	var count int
	err := r.pool.QueryRow(ctx, q, userID, date).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) TryRecordReopen(ctx context.Context, orderID, userID, date string, max int) (bool, error) {
	const q = `
INSERT INTO order_reopens (order_id, user_id, date)
SELECT $1, $2, $3
WHERE (SELECT count(*) FROM order_reopens WHERE user_id = $2 AND date = $3) < $4
RETURNING id
`
	var id int64
	err := r.pool.QueryRow(ctx, q, orderID, userID, date, max).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
