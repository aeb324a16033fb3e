package session

import (
	"context"
	"time"

	"freshmarket/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, token, userID string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
