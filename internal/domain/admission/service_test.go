package admission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"musicschool/internal/domain/course"
	"musicschool/internal/domain/lead"
	"musicschool/internal/domain/user"
)

type mockAdmissionRepo struct {
	mock.Mock
}

func (m *mockAdmissionRepo) Create(ctx context.Context, a *Admission) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAdmissionRepo) GetByID(ctx context.Context, id int64) (*Admission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admission), args.Error(1)
}

func (m *mockAdmissionRepo) List(ctx context.Context, status *Status, limit, offset int) ([]*Admission, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*Admission), args.Int(1), args.Error(2)
}

func (m *mockAdmissionRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockAdmissionRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLeadConverter struct {
	mock.Mock
}

func (m *mockLeadConverter) Convert(ctx context.Context, id int64, studentUserID int64) (*lead.Lead, error) {
	args := m.Called(ctx, id, studentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lead.Lead), args.Error(1)
}

type mockPlanProvider struct {
	mock.Mock
}

func (m *mockPlanProvider) GetPlan(ctx context.Context, id int64) (*course.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*course.Plan), args.Error(1)
}

type mockStudentProvider struct {
	mock.Mock
}

func (m *mockStudentProvider) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func newTestService() (*Service, *mockAdmissionRepo, *mockLeadConverter, *mockPlanProvider, *mockStudentProvider) {
	repo := new(mockAdmissionRepo)
	leads := new(mockLeadConverter)
	plans := new(mockPlanProvider)
	students := new(mockStudentProvider)
	return NewService(repo, leads, plans, students), repo, leads, plans, students
}

func TestCreate_FinalClassesDerived(t *testing.T) {
	svc, repo, leads, plans, students := newTestService()

	students.On("GetByID", mock.Anything, int64(10)).Return(&user.User{ID: 10, Role: user.RoleStudent}, nil)
	plans.On("GetPlan", mock.Anything, int64(5)).Return(&course.Plan{ID: 5, BaseClasses: 12}, nil)
	leads.On("Convert", mock.Anything, int64(1), int64(10)).Return(&lead.Lead{ID: 1}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Admission) bool {
		return a.BaseClasses == 12 && a.ExtraClasses == 3 && a.FinalClasses == 15 && a.Status == StatusPending
	})).Return(nil)

	a, err := svc.Create(context.Background(), CreateAdmissionRequest{
		LeadID:        1,
		StudentUserID: 10,
		PlanID:        5,
		ExtraClasses:  3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 15, a.FinalClasses)
	repo.AssertExpectations(t)
}

func TestCreate_RejectsNonStudent(t *testing.T) {
	svc, repo, _, _, students := newTestService()

	students.On("GetByID", mock.Anything, int64(11)).Return(&user.User{ID: 11, Role: user.RoleTeacher}, nil)

	_, err := svc.Create(context.Background(), CreateAdmissionRequest{
		LeadID:        1,
		StudentUserID: 11,
		PlanID:        5,
	})
	assert.ErrorIs(t, err, ErrNotAStudent)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_LeadGuardRollsBackAdmission(t *testing.T) {
	svc, repo, leads, plans, students := newTestService()

	students.On("GetByID", mock.Anything, int64(10)).Return(&user.User{ID: 10, Role: user.RoleStudent}, nil)
	plans.On("GetPlan", mock.Anything, int64(5)).Return(&course.Plan{ID: 5, BaseClasses: 8}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*Admission).ID = 77
	}).Return(nil)
	leads.On("Convert", mock.Anything, int64(2), int64(10)).Return(nil, lead.ErrAlreadyConverted)
	repo.On("Delete", mock.Anything, int64(77)).Return(nil)

	_, err := svc.Create(context.Background(), CreateAdmissionRequest{
		LeadID:        2,
		StudentUserID: 10,
		PlanID:        5,
	})
	assert.ErrorIs(t, err, lead.ErrAlreadyConverted)
	repo.AssertCalled(t, "Delete", mock.Anything, int64(77))
}

func TestCreate_InsertFailureLeavesLeadUnconverted(t *testing.T) {
	svc, repo, leads, plans, students := newTestService()

	students.On("GetByID", mock.Anything, int64(10)).Return(&user.User{ID: 10, Role: user.RoleStudent}, nil)
	plans.On("GetPlan", mock.Anything, int64(5)).Return(&course.Plan{ID: 5, BaseClasses: 8}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.Create(context.Background(), CreateAdmissionRequest{
		LeadID:        3,
		StudentUserID: 10,
		PlanID:        5,
	})
	assert.Error(t, err)
	leads.AssertNotCalled(t, "Convert")
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusActive, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusPending, false},
		{StatusCompleted, StatusActive, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatus_TerminalFrozen(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	done := &Admission{ID: 9, Status: StatusCompleted, CreatedAt: time.Now()}
	repo.On("GetByID", mock.Anything, int64(9)).Return(done, nil)

	_, err := svc.UpdateStatus(context.Background(), 9, StatusActive)
	assert.ErrorIs(t, err, ErrBadTransition)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatus_HappyPath(t *testing.T) {
	svc, repo, _, _, _ := newTestService()

	a := &Admission{ID: 3, Status: StatusPending}
	repo.On("GetByID", mock.Anything, int64(3)).Return(a, nil)
	repo.On("UpdateStatus", mock.Anything, int64(3), StatusActive).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), 3, StatusActive)
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
	repo.AssertExpectations(t)
}
