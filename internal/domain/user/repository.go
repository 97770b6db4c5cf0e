package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role;index"`
	Name         string    `gorm:"column:name"`
	Phone        *string   `gorm:"column:phone"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *User {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         Role(m.Role),
		Name:         m.Name,
		Phone:        phone,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toModel(u *User) userModel {
	var phone *string
	if u.Phone != "" {
		phone = &u.Phone
	}

	return userModel{
		ID:           u.ID,
		Email:        strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Name:         u.Name,
		Phone:        phone,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, u *User) error {
	m := toModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	u.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListByRole(ctx context.Context, role Role, limit, offset int) ([]*User, int, error) {
	var models []userModel
	var total int64

	q := r.db.WithContext(ctx).Model(&userModel{}).Where("role = ?", string(role))
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*User, 0, len(models))
	for _, m := range models {
		users = append(users, toDomainUser(m))
	}
	return users, int(total), nil
}

func (r *Repository) Update(ctx context.Context, u *User) error {
	m := toModel(u)
	m.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":       m.Name,
			"phone":      m.Phone,
			"updated_at": m.UpdatedAt,
		}).Error
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     active,
			"updated_at": time.Now(),
		}).Error
}

// Model exposes the gorm model for migrations.
func Model() interface{} { return &userModel{} }
