package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

// newTestStore creates a store backed by a temp database file, cleaned up
// with the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(StoreConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testStudent() *models.StudentProfile {
	return &models.StudentProfile{
		Name:        "Jamie Lin",
		Email:       "jamie@example.com",
		ParentName:  "Morgan Lin",
		ParentEmail: "morgan@example.com",
		GradeLevel:  "8",
		SubjectsNeeded: []models.SubjectNeed{
			{Name: "math", CurrentLevel: "C", TargetLevel: "A", Priority: 5},
		},
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "16:00", EndTime: "18:00"},
		},
		MaxHourlyRate:   35,
		SessionsPerWeek: 2,
		LearningStyle:   models.LearningVisual,
		Status:          models.StudentActive,
	}
}

func testTutor() *models.TutorProfile {
	return &models.TutorProfile{
		Name:  "Alex Reyes",
		Email: "alex@example.com",
		Subjects: []models.SubjectSkill{
			{Name: "math", ProficiencyLevel: 9},
			{Name: "physics", ProficiencyLevel: 7},
		},
		HourlyRate:      25,
		ExperienceYears: 4,
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "15:00", EndTime: "19:00"},
		},
		Performance: models.PerformanceMetrics{
			AverageStudentImprovement: 7.5,
			AverageParentRating:       4.6,
			TotalSessionsCompleted:    120,
			ReliabilityScore:          9,
		},
		Status: models.TutorActive,
	}
}

func TestStudentCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	student := testStudent()
	require.NoError(t, store.CreateStudent(ctx, student))
	require.NotEmpty(t, student.ID, "create assigns an ID")

	got, err := store.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.Name, got.Name)
	assert.Equal(t, student.ParentEmail, got.ParentEmail)
	assert.Equal(t, student.SubjectsNeeded, got.SubjectsNeeded)
	assert.Equal(t, student.Availability, got.Availability)
	assert.Equal(t, 35.0, got.MaxHourlyRate)
	assert.Equal(t, models.LearningVisual, got.LearningStyle)
	assert.False(t, got.CreatedAt.IsZero())

	got.MaxHourlyRate = 40
	got.Status = models.StudentInactive
	require.NoError(t, store.UpdateStudent(ctx, got))

	updated, err := store.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.MaxHourlyRate)
	assert.Equal(t, models.StudentInactive, updated.Status)

	require.NoError(t, store.DeleteStudent(ctx, student.ID))
	_, err = store.GetStudent(ctx, student.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestTutorCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tutor := testTutor()
	require.NoError(t, store.CreateTutor(ctx, tutor))
	require.NotEmpty(t, tutor.ID)

	got, err := store.GetTutor(ctx, tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, tutor.Subjects, got.Subjects)
	assert.Equal(t, tutor.Performance, got.Performance)
	assert.Equal(t, 25.0, got.HourlyRate)

	got.HourlyRate = 28
	require.NoError(t, store.UpdateTutor(ctx, got))

	updated, err := store.GetTutor(ctx, tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, 28.0, updated.HourlyRate)

	require.NoError(t, store.DeleteTutor(ctx, tutor.ID))
	assert.ErrorIs(t, store.DeleteTutor(ctx, tutor.ID), db.ErrNotFound)
}

func TestListActiveFiltersStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	active := testStudent()
	require.NoError(t, store.CreateStudent(ctx, active))
	graduated := testStudent()
	graduated.Status = models.StudentGraduated
	require.NoError(t, store.CreateStudent(ctx, graduated))

	all, err := store.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := store.ListActiveStudents(ctx)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)

	onLeave := testTutor()
	onLeave.Status = models.TutorOnLeave
	require.NoError(t, store.CreateTutor(ctx, onLeave))
	activeTutor := testTutor()
	require.NoError(t, store.CreateTutor(ctx, activeTutor))

	activeTutors, err := store.ListActiveTutors(ctx)
	require.NoError(t, err)
	require.Len(t, activeTutors, 1)
	assert.Equal(t, activeTutor.ID, activeTutors[0].ID)
}

func TestWeightConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetActiveWeightConfig(ctx)
	assert.ErrorIs(t, err, db.ErrNotFound, "empty database has no config row")

	cfg := models.DefaultWeightConfig()
	require.NoError(t, store.CreateWeightConfig(ctx, cfg))

	got, err := store.GetActiveWeightConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ConfigTypeMatchingWeights, got.ConfigType)
	assert.Equal(t, cfg.Weights, got.Weights)
	assert.Equal(t, 85.0, got.ChargePercentage)

	got.ChargePercentage = 90
	got.Weights.ProfitMargin = 0.30
	got.Weights.StudentImprovement = 0.25
	got.UpdatedBy = "ops@lcc360"
	require.NoError(t, store.SaveWeightConfig(ctx, got))

	saved, err := store.GetActiveWeightConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90.0, saved.ChargePercentage)
	assert.Equal(t, 0.30, saved.Weights.ProfitMargin)
	assert.Equal(t, "ops@lcc360", saved.UpdatedBy)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Re-running against the same database must be a no-op.
	require.NoError(t, runMigrations(store.DB()))
}
