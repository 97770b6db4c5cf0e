package admission

import (
	"context"

	"musicschool/internal/domain/course"
	"musicschool/internal/domain/lead"
	"musicschool/internal/domain/user"
)

// RepositoryInterface defines admission data access
type RepositoryInterface interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, id int64) (*Admission, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Admission, int, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	Delete(ctx context.Context, id int64) error
}

// LeadConverter marks leads as converted
type LeadConverter interface {
	Convert(ctx context.Context, id int64, studentUserID int64) (*lead.Lead, error)
}

// PlanProvider resolves course plans
type PlanProvider interface {
	GetPlan(ctx context.Context, id int64) (*course.Plan, error)
}

// StudentProvider resolves user records
type StudentProvider interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}
