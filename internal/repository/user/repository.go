package user

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateUserInput struct {
	Name         string
	Username     string
	PasswordHash string
	Role         domain.Role
	Avatar       string
}

type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
