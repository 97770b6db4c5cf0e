package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type notificationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	LeadID    *int64    `gorm:"column:lead_id"`
	Type      string    `gorm:"column:type"`
	Title     string    `gorm:"column:title"`
	Body      string    `gorm:"column:body"`
	Read      bool      `gorm:"column:read"`
	DedupKey  string    `gorm:"column:dedup_key;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomain(m notificationModel) *Notification {
	return &Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		LeadID:    m.LeadID,
		Type:      Type(m.Type),
		Title:     m.Title,
		Body:      m.Body,
		Read:      m.Read,
		DedupKey:  m.DedupKey,
		CreatedAt: m.CreatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, n *Notification) error {
	m := notificationModel{
		UserID:    n.UserID,
		LeadID:    n.LeadID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		DedupKey:  n.DedupKey,
		CreatedAt: n.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	return nil
}

func (r *Repository) ExistsByDedupKey(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("dedup_key = ?", key).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	var models []notificationModel

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*Notification, 0, len(models))
	for _, m := range models {
		out = append(out, toDomain(m))
	}
	return out, nil
}

func (r *Repository) MarkRead(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteOlderThan removes notifications past the retention window.
func (r *Repository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&notificationModel{})
	return res.RowsAffected, res.Error
}

// Model exposes the gorm model for migrations.
func Model() interface{} { return &notificationModel{} }
