package domain

import "time"

// AuditLog records one mutating staff action with a snapshot of the change.
type AuditLog struct {
	ID         int64                  `json:"id"`
	UserID     string                 `json:"userId"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entityType"`
	EntityID   string                 `json:"entityId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}
