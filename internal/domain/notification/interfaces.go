package notification

import (
	"context"
	"time"

	"musicschool/internal/domain/lead"
)

// RepositoryInterface defines notification data access
type RepositoryInterface interface {
	Create(ctx context.Context, n *Notification) error
	ExistsByDedupKey(ctx context.Context, key string) (bool, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]*Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// LeadSource lists leads whose follow-up is due
type LeadSource interface {
	DueFollowUps(ctx context.Context, date string) ([]*lead.Lead, error)
}
