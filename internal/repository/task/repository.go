package task

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateTaskInput struct {
	Title        string
	AssignedTo   domain.TaskAssignee
	AssignedToID *string
	CreatedBy    string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Task, error)
	// ListVisible returns tasks assigned to everyone, to the given role, or
	// to the given user directly.
	ListVisible(ctx context.Context, userID string, role domain.Role) ([]domain.Task, error)
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
