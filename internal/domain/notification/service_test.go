package notification

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"musicschool/internal/domain/lead"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepo) ExistsByDedupKey(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Notification), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockNotificationRepo) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

type mockLeadSource struct {
	mock.Mock
}

func (m *mockLeadSource) DueFollowUps(ctx context.Context, date string) ([]*lead.Lead, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lead.Lead), args.Error(1)
}

func ownedLead(id, ownerID int64) *lead.Lead {
	return &lead.Lead{
		ID:             id,
		FirstName:      "Ana",
		LastName:       "Li",
		OwnerID:        sql.NullInt64{Int64: ownerID, Valid: ownerID != 0},
		FollowUpDate:   time.Now().Format(lead.DateLayout),
		FollowUpStatus: lead.FollowUpOpen,
	}
}

func TestRemindDueFollowUps_CreatesPerOwnedLead(t *testing.T) {
	repo := new(mockNotificationRepo)
	leads := new(mockLeadSource)
	svc := NewService(repo, leads, zap.NewNop().Sugar())

	leads.On("DueFollowUps", mock.Anything, mock.Anything).
		Return([]*lead.Lead{ownedLead(1, 10), ownedLead(2, 0), ownedLead(3, 11)}, nil)
	repo.On("ExistsByDedupKey", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notification) bool {
		return n.Type == TypeFollowUpDue && n.LeadID != nil
	})).Return(nil)

	created, err := svc.RemindDueFollowUps(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, created, "unowned lead is skipped")
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestRemindDueFollowUps_DedupsWithinDay(t *testing.T) {
	repo := new(mockNotificationRepo)
	leads := new(mockLeadSource)
	svc := NewService(repo, leads, zap.NewNop().Sugar())

	leads.On("DueFollowUps", mock.Anything, mock.Anything).
		Return([]*lead.Lead{ownedLead(1, 10)}, nil)
	repo.On("ExistsByDedupKey", mock.Anything, mock.Anything).Return(true, nil)

	created, err := svc.RemindDueFollowUps(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, created)
	repo.AssertNotCalled(t, "Create")
}

func TestCleanup_UsesRetentionWindow(t *testing.T) {
	repo := new(mockNotificationRepo)
	leads := new(mockLeadSource)
	svc := NewService(repo, leads, zap.NewNop().Sugar())

	repo.On("DeleteOlderThan", mock.Anything, 90*24*time.Hour).Return(int64(4), nil)

	assert.NoError(t, svc.Cleanup(context.Background(), 90))
	repo.AssertExpectations(t)
}
