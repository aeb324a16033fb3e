package auditlog

import (
	"context"

	"freshmarket/internal/domain"
)

type CreateAuditLogInput struct {
	UserID     string
	Action     string
	EntityType string
	EntityID   string
	Details    map[string]interface{}
}

type Repository interface {
	// List returns the newest 100 entries.
	List(ctx context.Context) ([]domain.AuditLog, error)
	Create(ctx context.Context, in CreateAuditLogInput) (*domain.AuditLog, error)
}
