package task

import (
	"context"
	"errors"

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

const taskColumns = `id::text, title, completed, assigned_to, assigned_to_id::text, created_by::text, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	return r.fetchTasks(ctx, q)
}

func (r *postgresRepo) ListVisible(ctx context.Context, userID string, role domain.Role) ([]domain.Task, error) {
	const q = `
SELECT ` + taskColumns + `
FROM tasks
WHERE assigned_to = 'all' OR assigned_to = $2 OR assigned_to_id = $1
ORDER BY created_at DESC
`
	return r.fetchTasks(ctx, q, userID, string(role))
}

func (r *postgresRepo) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	const q = `
INSERT INTO tasks (title, assigned_to, assigned_to_id, created_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + taskColumns
	var t domain.Task
	if err := scanTask(r.pool.QueryRow(ctx, q, in.Title, in.AssignedTo, in.AssignedToID, in.CreatedBy), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	const q = `
UPDATE tasks
SET completed = $2
WHERE id = $1
RETURNING ` + taskColumns
	var t domain.Task
	if err := scanTask(r.pool.QueryRow(ctx, q, id, completed), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchTasks(ctx context.Context, q string, args ...interface{}) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func scanTask(row pgx.Row, t *domain.Task) error {
	return row.Scan(&t.ID, &t.Title, &t.Completed, &t.AssignedTo, &t.AssignedToID, &t.CreatedBy, &t.CreatedAt)
}
