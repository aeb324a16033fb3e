package domain

import "time"

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Notification targets one user, or every user when UserID is nil.
type Notification struct {
	ID        string                 `json:"id"`
	UserID    *string                `json:"userId"`
	Type      NotificationType       `json:"type"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
