package lead

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles lead business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates lead service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Create persists a new lead from a validated payload
func (s *Service) Create(ctx context.Context, p Payload) (*Lead, error) {
	stage, err := s.repo.GetStage(ctx, p.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}

	now := time.Now()
	l := &Lead{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Email:          nullString(p.Email),
		Interest:       nullString(p.Interest),
		Source:         nullString(p.Source),
		StageID:        p.StageID,
		Notes:          nullString(p.Notes),
		FollowUpDate:   p.FollowUpDate,
		FollowUpStatus: p.FollowUpStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.OwnerID != nil {
		l.OwnerID = sql.NullInt64{Int64: *p.OwnerID, Valid: true}
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetByID returns lead by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// List returns leads with optional stage filter
func (s *Service) List(ctx context.Context, stageID *string, limit, offset int) ([]*Lead, int, error) {
	return s.repo.List(ctx, stageID, limit, offset)
}

// Update applies a validated payload to an existing lead
func (s *Service) Update(ctx context.Context, id int64, p Payload) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}

	stage, err := s.repo.GetStage(ctx, p.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}

	l.FirstName = p.FirstName
	l.LastName = p.LastName
	l.Phone = p.Phone
	l.Email = nullString(p.Email)
	l.Interest = nullString(p.Interest)
	l.Source = nullString(p.Source)
	l.StageID = p.StageID
	l.Notes = nullString(p.Notes)
	l.FollowUpDate = p.FollowUpDate
	l.FollowUpStatus = p.FollowUpStatus
	l.OwnerID = sql.NullInt64{}
	if p.OwnerID != nil {
		l.OwnerID = sql.NullInt64{Int64: *p.OwnerID, Valid: true}
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// MoveStage moves a lead to another stage
func (s *Service) MoveStage(ctx context.Context, id int64, stageID string) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	if l.IsConverted() {
		return ErrAlreadyConverted
	}

	stage, err := s.repo.GetStage(ctx, stageID)
	if err != nil {
		return err
	}
	if stage == nil {
		return ErrStageNotFound
	}

	return s.repo.MoveStage(ctx, id, stageID)
}

// CompleteFollowUp marks the lead's follow-up as done
func (s *Service) CompleteFollowUp(ctx context.Context, id int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	return s.repo.SetFollowUpStatus(ctx, id, FollowUpDone)
}

// Delete removes a lead. Soft delete by default; hard delete is an
// explicit, separate decision.
func (s *Service) Delete(ctx context.Context, id int64, hard bool) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	if hard {
		return s.repo.HardDelete(ctx, id)
	}
	return s.repo.SoftDelete(ctx, id)
}

// Convert marks a lead converted to the given student user. The lead must
// sit in an onboarding stage. Called by the admission workflow.
func (s *Service) Convert(ctx context.Context, id int64, studentUserID int64) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}

	stage, err := s.repo.GetStage(ctx, l.StageID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, ErrStageNotFound
	}
	if !stage.IsOnboarded {
		return nil, ErrStageNotOnboard
	}

	if err := s.repo.MarkConverted(ctx, id, studentUserID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DueFollowUps lists open leads due on or before the given date
func (s *Service) DueFollowUps(ctx context.Context, date string) ([]*Lead, error) {
	return s.repo.DueFollowUps(ctx, date)
}

// Stats returns per-stage lead counts
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	counts, err := s.repo.CountByStage(ctx)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return &StatsResponse{ByStage: counts, Total: total}, nil
}

// CreateStage creates a pipeline stage
func (s *Service) CreateStage(ctx context.Context, req CreateStageRequest) (*Stage, error) {
	st := &Stage{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsOnboarded: req.IsOnboarded,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateStage(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// ListStages returns the pipeline stages in order
func (s *Service) ListStages(ctx context.Context) ([]*Stage, error) {
	return s.repo.ListStages(ctx)
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
