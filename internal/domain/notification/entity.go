package notification

import "time"

// Type classifies a notification
type Type string

const (
	TypeFollowUpDue Type = "follow_up_due"
	TypeSystem      Type = "system"
)

// Notification represents an in-app message for a user
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	LeadID    *int64    `json:"lead_id,omitempty"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	DedupKey  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
