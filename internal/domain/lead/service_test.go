package lead

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock lead repository implementing RepositoryInterface
type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int64) (*Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *mockLeadRepo) List(ctx context.Context, stageID *string, limit, offset int) ([]*Lead, int, error) {
	args := m.Called(ctx, stageID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*Lead), args.Int(1), args.Error(2)
}

func (m *mockLeadRepo) Update(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepo) MoveStage(ctx context.Context, id int64, stageID string) error {
	args := m.Called(ctx, id, stageID)
	return args.Error(0)
}

func (m *mockLeadRepo) SetFollowUpStatus(ctx context.Context, id int64, status FollowUpStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockLeadRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLeadRepo) HardDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLeadRepo) MarkConverted(ctx context.Context, id int64, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockLeadRepo) DueFollowUps(ctx context.Context, date string) ([]*Lead, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Lead), args.Error(1)
}

func (m *mockLeadRepo) CountByStage(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *mockLeadRepo) CreateStage(ctx context.Context, s *Stage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockLeadRepo) GetStage(ctx context.Context, id string) (*Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stage), args.Error(1)
}

func (m *mockLeadRepo) ListStages(ctx context.Context) ([]*Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Stage), args.Error(1)
}

func sampleStage(onboarded bool) *Stage {
	return &Stage{
		ID:          "s1",
		Name:        "Trial booked",
		Color:       "#4caf50",
		SortOrder:   2,
		IsOnboarded: onboarded,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func TestServiceCreate_UnknownStage(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("GetStage", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Create(context.Background(), Payload{StageID: "missing"})
	assert.ErrorIs(t, err, ErrStageNotFound)
	repo.AssertNotCalled(t, "Create")
}

func TestServiceCreate_NormalizesOptionals(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("GetStage", mock.Anything, "s1").Return(sampleStage(false), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Lead) bool {
		return !l.Email.Valid && !l.Notes.Valid && l.Interest.Valid
	})).Return(nil)

	fv := FormValues{
		FirstName:      "Ana",
		LastName:       "Li",
		Phone:          "12345",
		Interest:       "violin",
		StageID:        "s1",
		FollowUpDate:   "2099-01-01",
		FollowUpStatus: "open",
	}
	l, err := svc.Create(context.Background(), fv.Payload())
	assert.NoError(t, err)
	assert.False(t, l.Email.Valid)
	assert.Equal(t, "violin", l.Interest.String)
	repo.AssertExpectations(t)
}

func TestServiceConvert_Guards(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	converted := &Lead{ID: 1, StageID: "s1", ConvertedAt: sql.NullTime{Time: time.Now(), Valid: true}}
	repo.On("GetByID", mock.Anything, int64(1)).Return(converted, nil)

	_, err := svc.Convert(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestServiceConvert_RequiresOnboardingStage(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	l := &Lead{ID: 2, StageID: "s1"}
	repo.On("GetByID", mock.Anything, int64(2)).Return(l, nil)
	repo.On("GetStage", mock.Anything, "s1").Return(sampleStage(false), nil)

	_, err := svc.Convert(context.Background(), 2, 77)
	assert.ErrorIs(t, err, ErrStageNotOnboard)
	repo.AssertNotCalled(t, "MarkConverted")
}

func TestServiceConvert_MarksLead(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	l := &Lead{ID: 3, StageID: "s1"}
	repo.On("GetByID", mock.Anything, int64(3)).Return(l, nil)
	repo.On("GetStage", mock.Anything, "s1").Return(sampleStage(true), nil)
	repo.On("MarkConverted", mock.Anything, int64(3), int64(77)).Return(nil)

	_, err := svc.Convert(context.Background(), 3, 77)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestServiceDelete_SoftByDefault(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	l := &Lead{ID: 4, StageID: "s1"}
	repo.On("GetByID", mock.Anything, int64(4)).Return(l, nil)
	repo.On("SoftDelete", mock.Anything, int64(4)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 4, false))
	repo.AssertNotCalled(t, "HardDelete")

	repo.On("HardDelete", mock.Anything, int64(4)).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), 4, true))
	repo.AssertExpectations(t)
}

func TestServiceMoveStage_ConvertedLeadFrozen(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	converted := &Lead{ID: 5, StageID: "s1", ConvertedAt: sql.NullTime{Time: time.Now(), Valid: true}}
	repo.On("GetByID", mock.Anything, int64(5)).Return(converted, nil)

	err := svc.MoveStage(context.Background(), 5, "s2")
	assert.ErrorIs(t, err, ErrAlreadyConverted)
}

func TestServiceStats_Totals(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("CountByStage", mock.Anything).Return(map[string]int{"s1": 3, "s2": 2}, nil)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.ByStage["s1"])
}
