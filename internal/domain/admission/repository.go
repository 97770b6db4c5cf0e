package admission

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type admissionModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	LeadID        int64     `gorm:"column:lead_id;index"`
	StudentUserID int64     `gorm:"column:student_user_id;index"`
	PlanID        int64     `gorm:"column:plan_id"`
	BaseClasses   int       `gorm:"column:base_classes"`
	ExtraClasses  int       `gorm:"column:extra_classes"`
	FinalClasses  int       `gorm:"column:final_classes"`
	Status        string    `gorm:"column:status;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (admissionModel) TableName() string { return "admissions" }

func toDomain(m admissionModel) *Admission {
	return &Admission{
		ID:            m.ID,
		LeadID:        m.LeadID,
		StudentUserID: m.StudentUserID,
		PlanID:        m.PlanID,
		BaseClasses:   m.BaseClasses,
		ExtraClasses:  m.ExtraClasses,
		FinalClasses:  m.FinalClasses,
		Status:        Status(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, a *Admission) error {
	m := admissionModel{
		LeadID:        a.LeadID,
		StudentUserID: a.StudentUserID,
		PlanID:        a.PlanID,
		BaseClasses:   a.BaseClasses,
		ExtraClasses:  a.ExtraClasses,
		FinalClasses:  a.FinalClasses,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	a.ID = m.ID
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Admission, error) {
	var m admissionModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(m), nil
}

func (r *Repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Admission, int, error) {
	var models []admissionModel
	var total int64

	q := r.db.WithContext(ctx).Model(&admissionModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*Admission, 0, len(models))
	for _, m := range models {
		out = append(out, toDomain(m))
	}
	return out, int(total), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return r.db.WithContext(ctx).Model(&admissionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// Delete removes an admission row. Used to back out an insert when the
// lead conversion that follows it fails.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&admissionModel{}, "id = ?", id).Error
}

// Model exposes the gorm model for migrations.
func Model() interface{} { return &admissionModel{} }
