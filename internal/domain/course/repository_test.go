package course

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/internal/database"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	return NewRepository(db)
}

func TestRepository_CourseLifecycle(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	inst := &Instrument{ID: uuid.NewString(), Name: "Piano", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInstrument(ctx, inst))

	c := &Course{
		InstrumentID: inst.ID,
		Name:         "Piano Foundations",
		Difficulty:   DifficultyBeginner,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.CreateCourse(ctx, c))
	require.NotZero(t, c.ID)

	got, err := repo.GetCourse(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Piano Foundations", got.Name)
	assert.Equal(t, DifficultyBeginner, got.Difficulty)

	got.Name = "Piano Basics"
	got.IsActive = false
	require.NoError(t, repo.UpdateCourse(ctx, got))

	got, err = repo.GetCourse(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Piano Basics", got.Name)
	assert.False(t, got.IsActive)
}

func TestRepository_ListCoursesActiveFilter(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	inst := &Instrument{ID: uuid.NewString(), Name: "Guitar", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInstrument(ctx, inst))

	for _, c := range []*Course{
		{InstrumentID: inst.ID, Name: "Guitar A", Difficulty: DifficultyBeginner, IsActive: true},
		{InstrumentID: inst.ID, Name: "Guitar B", Difficulty: DifficultyAdvanced, IsActive: false},
	} {
		c.CreatedAt = time.Now()
		c.UpdatedAt = time.Now()
		require.NoError(t, repo.CreateCourse(ctx, c))
	}

	all, total, err := repo.ListCourses(ctx, false, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	active, total, err := repo.ListCourses(ctx, true, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, active, 1)
	assert.Equal(t, "Guitar A", active[0].Name)
}

func TestRepository_GetMissingReturnsNil(t *testing.T) {
	repo := testRepo(t)

	c, err := repo.GetCourse(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, c)

	i, err := repo.GetInstrument(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, i)
}

func TestRepository_Plans(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	inst := &Instrument{ID: uuid.NewString(), Name: "Drums", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInstrument(ctx, inst))

	c := &Course{InstrumentID: inst.ID, Name: "Drums 101", Difficulty: DifficultyBeginner, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.CreateCourse(ctx, c))

	p := &Plan{CourseID: c.ID, Name: "Monthly 8", BaseClasses: 8, PriceCents: 120000, CreatedAt: time.Now()}
	require.NoError(t, repo.CreatePlan(ctx, p))
	require.NotZero(t, p.ID)

	plans, err := repo.ListPlans(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 8, plans[0].BaseClasses)
}
