package course

import "context"

// RepositoryInterface defines catalog data access
type RepositoryInterface interface {
	CreateInstrument(ctx context.Context, i *Instrument) error
	GetInstrument(ctx context.Context, id string) (*Instrument, error)
	ListInstruments(ctx context.Context) ([]*Instrument, error)

	CreateCourse(ctx context.Context, c *Course) error
	GetCourse(ctx context.Context, id int64) (*Course, error)
	ListCourses(ctx context.Context, activeOnly bool, limit, offset int) ([]*Course, int, error)
	UpdateCourse(ctx context.Context, c *Course) error

	CreatePlan(ctx context.Context, p *Plan) error
	GetPlan(ctx context.Context, id int64) (*Plan, error)
	ListPlans(ctx context.Context, courseID int64) ([]*Plan, error)
}
