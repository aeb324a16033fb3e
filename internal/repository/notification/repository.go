package notification

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateNotificationInput struct {
	// UserID nil means broadcast to every user.
	UserID   *string
	Type     domain.NotificationType
	Message  string
	Metadata map[string]interface{}
}

type Repository interface {
	// ListForUser returns the user's own notifications plus broadcasts,
	// newest first, capped at 50.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
