package lead

import "context"

// RepositoryInterface defines lead data access
type RepositoryInterface interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id int64) (*Lead, error)
	List(ctx context.Context, stageID *string, limit, offset int) ([]*Lead, int, error)
	Update(ctx context.Context, l *Lead) error
	MoveStage(ctx context.Context, id int64, stageID string) error
	SetFollowUpStatus(ctx context.Context, id int64, status FollowUpStatus) error
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
	MarkConverted(ctx context.Context, id int64, userID int64) error
	DueFollowUps(ctx context.Context, date string) ([]*Lead, error)
	CountByStage(ctx context.Context) (map[string]int, error)

	CreateStage(ctx context.Context, s *Stage) error
	GetStage(ctx context.Context, id string) (*Stage, error)
	ListStages(ctx context.Context) ([]*Stage, error)
}
