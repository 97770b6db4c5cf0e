package course

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

type instrumentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (instrumentModel) TableName() string { return "instruments" }

type courseModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	InstrumentID string    `gorm:"column:instrument_id;index"`
	Name         string    `gorm:"column:name"`
	Difficulty   string    `gorm:"column:difficulty"`
	Description  string    `gorm:"column:description"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string { return "courses" }

type planModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CourseID    int64     `gorm:"column:course_id;index"`
	Name        string    `gorm:"column:name"`
	BaseClasses int       `gorm:"column:base_classes"`
	PriceCents  int64     `gorm:"column:price_cents"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (planModel) TableName() string { return "course_plans" }

func toDomainCourse(m courseModel) *Course {
	return &Course{
		ID:           m.ID,
		InstrumentID: m.InstrumentID,
		Name:         m.Name,
		Difficulty:   Difficulty(m.Difficulty),
		Description:  m.Description,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *Repository) CreateInstrument(ctx context.Context, i *Instrument) error {
	m := instrumentModel{ID: i.ID, Name: i.Name, Active: i.Active, CreatedAt: i.CreatedAt}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *Repository) GetInstrument(ctx context.Context, id string) (*Instrument, error) {
	var m instrumentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Instrument{ID: m.ID, Name: m.Name, Active: m.Active, CreatedAt: m.CreatedAt}, nil
}

func (r *Repository) ListInstruments(ctx context.Context) ([]*Instrument, error) {
	var models []instrumentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*Instrument, 0, len(models))
	for _, m := range models {
		out = append(out, &Instrument{ID: m.ID, Name: m.Name, Active: m.Active, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *Repository) CreateCourse(ctx context.Context, c *Course) error {
	m := courseModel{
		InstrumentID: c.InstrumentID,
		Name:         c.Name,
		Difficulty:   string(c.Difficulty),
		Description:  c.Description,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *Repository) GetCourse(ctx context.Context, id int64) (*Course, error) {
	var m courseModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainCourse(m), nil
}

func (r *Repository) ListCourses(ctx context.Context, activeOnly bool, limit, offset int) ([]*Course, int, error) {
	var models []courseModel
	var total int64

	q := r.db.WithContext(ctx).Model(&courseModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	courses := make([]*Course, 0, len(models))
	for _, m := range models {
		courses = append(courses, toDomainCourse(m))
	}
	return courses, int(total), nil
}

func (r *Repository) UpdateCourse(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Model(&courseModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"instrument_id": c.InstrumentID,
			"name":          c.Name,
			"difficulty":    string(c.Difficulty),
			"description":   c.Description,
			"is_active":     c.IsActive,
			"updated_at":    time.Now(),
		}).Error
}

func (r *Repository) CreatePlan(ctx context.Context, p *Plan) error {
	m := planModel{
		CourseID:    p.CourseID,
		Name:        p.Name,
		BaseClasses: p.BaseClasses,
		PriceCents:  p.PriceCents,
		CreatedAt:   p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

func (r *Repository) GetPlan(ctx context.Context, id int64) (*Plan, error) {
	var m planModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Plan{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Name:        m.Name,
		BaseClasses: m.BaseClasses,
		PriceCents:  m.PriceCents,
		CreatedAt:   m.CreatedAt,
	}, nil
}

func (r *Repository) ListPlans(ctx context.Context, courseID int64) ([]*Plan, error) {
	var models []planModel
	if err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("base_classes ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*Plan, 0, len(models))
	for _, m := range models {
		out = append(out, &Plan{
			ID:          m.ID,
			CourseID:    m.CourseID,
			Name:        m.Name,
			BaseClasses: m.BaseClasses,
			PriceCents:  m.PriceCents,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Models exposes the gorm models for migrations.
func Models() []interface{} {
	return []interface{}{&instrumentModel{}, &courseModel{}, &planModel{}}
}
