package course

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles course catalog business logic
type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// CreateInstrument adds a teachable instrument
func (s *Service) CreateInstrument(ctx context.Context, req CreateInstrumentRequest) (*Instrument, error) {
	i := &Instrument{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateInstrument(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// ListInstruments returns all instruments
func (s *Service) ListInstruments(ctx context.Context) ([]*Instrument, error) {
	return s.repo.ListInstruments(ctx)
}

// CreateCourse persists a new catalog entry from a validated payload.
// The instrument reference must resolve.
func (s *Service) CreateCourse(ctx context.Context, p Payload) (*Course, error) {
	inst, err := s.repo.GetInstrument(ctx, p.InstrumentID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, ErrInstrumentNotFound
	}

	now := time.Now()
	c := &Course{
		InstrumentID: p.InstrumentID,
		Name:         p.Name,
		Difficulty:   p.Difficulty,
		Description:  p.Description,
		IsActive:     p.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCourse returns a course by ID
func (s *Service) GetCourse(ctx context.Context, id int64) (*Course, error) {
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

// ListCourses returns the catalog
func (s *Service) ListCourses(ctx context.Context, activeOnly bool, limit, offset int) ([]*Course, int, error) {
	return s.repo.ListCourses(ctx, activeOnly, limit, offset)
}

// UpdateCourse applies a validated payload to an existing course
func (s *Service) UpdateCourse(ctx context.Context, id int64, p Payload) (*Course, error) {
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	inst, err := s.repo.GetInstrument(ctx, p.InstrumentID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, ErrInstrumentNotFound
	}

	c.InstrumentID = p.InstrumentID
	c.Name = p.Name
	c.Difficulty = p.Difficulty
	c.Description = p.Description
	c.IsActive = p.IsActive

	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreatePlan adds a priced class bundle to a course
func (s *Service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	c, err := s.repo.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}

	p := &Plan{
		CourseID:    req.CourseID,
		Name:        req.Name,
		BaseClasses: req.BaseClasses,
		PriceCents:  req.PriceCents,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlan returns a course plan by ID
func (s *Service) GetPlan(ctx context.Context, id int64) (*Plan, error) {
	p, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

// ListPlans returns the plans of a course
func (s *Service) ListPlans(ctx context.Context, courseID int64) ([]*Plan, error) {
	return s.repo.ListPlans(ctx, courseID)
}
