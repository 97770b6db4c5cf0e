package admission

import (
	"context"
	"time"

	"musicschool/internal/domain/user"
)

// Service handles admission business logic
type Service struct {
	repo     RepositoryInterface
	leads    LeadConverter
	plans    PlanProvider
	students StudentProvider
}

// NewService creates admission service
func NewService(repo RepositoryInterface, leads LeadConverter, plans PlanProvider, students StudentProvider) *Service {
	return &Service{
		repo:     repo,
		leads:    leads,
		plans:    plans,
		students: students,
	}
}

// Create converts a lead into an admission on the given plan. The class
// count is derived, never supplied: final = plan base + granted extras.
func (s *Service) Create(ctx context.Context, req CreateAdmissionRequest) (*Admission, error) {
	if req.ExtraClasses < 0 {
		return nil, ErrNegativeExtras
	}

	student, err := s.students.GetByID(ctx, req.StudentUserID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	if student.Role != user.RoleStudent {
		return nil, ErrNotAStudent
	}

	plan, err := s.plans.GetPlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &Admission{
		LeadID:        req.LeadID,
		StudentUserID: req.StudentUserID,
		PlanID:        req.PlanID,
		BaseClasses:   plan.BaseClasses,
		ExtraClasses:  req.ExtraClasses,
		FinalClasses:  plan.BaseClasses + req.ExtraClasses,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	// Converting the lead is the commit point. It also enforces the
	// pipeline guards: onboarding stage, not already converted. On
	// failure the admission row is backed out so a retry starts clean.
	if _, err := s.leads.Convert(ctx, req.LeadID, req.StudentUserID); err != nil {
		_ = s.repo.Delete(ctx, a.ID)
		return nil, err
	}
	return a, nil
}

// GetByID returns an admission
func (s *Service) GetByID(ctx context.Context, id int64) (*Admission, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAdmissionNotFound
	}
	return a, nil
}

// List returns admissions with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Admission, int, error) {
	if status != nil && !ValidStatus(*status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves an admission through its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, id int64, to Status) (*Admission, error) {
	if !ValidStatus(to) {
		return nil, ErrInvalidStatus
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAdmissionNotFound
	}
	if !CanTransition(a.Status, to) {
		return nil, ErrBadTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	a.Status = to
	return a, nil
}
