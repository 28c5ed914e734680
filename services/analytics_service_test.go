package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shruti-ops/fitness-diet-tracker/models"
	"github.com/Shruti-ops/fitness-diet-tracker/testutil"
)

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestRecentWorkoutsNewestFirstCapped(t *testing.T) {
	db := testutil.NewDB(t)
	for i := 0; i < 35; i++ {
		require.NoError(t, db.Create(&models.WorkoutLog{UserID: 1, ExerciseType: "run", Duration: i, LogDate: day(i)}).Error)
	}
	require.NoError(t, db.Create(&models.WorkoutLog{UserID: 2, ExerciseType: "swim", LogDate: day(100)}).Error)

	got, err := NewAnalyticsService(db).RecentWorkouts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, DashboardLimit)
	assert.Equal(t, 34, got[0].Duration)
	assert.Equal(t, 5, got[len(got)-1].Duration)
	for _, w := range got {
		assert.Equal(t, "run", w.ExerciseType)
	}
}

func TestRecentWorkoutsEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	got, err := NewAnalyticsService(db).RecentWorkouts(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWaterIntakeByDayGroupsAndCaps(t *testing.T) {
	db := testutil.NewDB(t)
	for i := 0; i < 40; i++ {
		require.NoError(t, db.Create(&models.WaterIntake{UserID: 1, Quantity: 250, LogDate: day(i)}).Error)
		require.NoError(t, db.Create(&models.WaterIntake{UserID: 1, Quantity: 100, LogDate: day(i)}).Error)
	}
	require.NoError(t, db.Create(&models.WaterIntake{UserID: 9, Quantity: 1000, LogDate: day(39)}).Error)

	got, err := NewAnalyticsService(db).WaterIntakeByDay(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, DashboardLimit)
	for _, d := range got {
		assert.Equal(t, 350.0, d.TotalQuantity)
	}
	assert.True(t, got[0].LogDate.After(got[1].LogDate), "newest day first")
}

func TestLatestGoal(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	none, err := svc.LatestGoal(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.FitnessGoalLog{UserID: 1, GoalType: "old", StartDate: day(0), CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.FitnessGoalLog{UserID: 1, GoalType: "new", DurationWeeks: 6, StartDate: day(1), CreatedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.FitnessGoalLog{UserID: 2, GoalType: "other", StartDate: day(2), CreatedAt: base.Add(2 * time.Hour)}).Error)

	got, err := svc.LatestGoal(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.GoalType)
	assert.Equal(t, 6, got.DurationWeeks)
}

func TestAnalyticsDatabaseError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`FROM "workout_log"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`FROM "water_intake"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(`FROM "fitness_goal_log"`).WillReturnError(errors.New("connection reset"))
	svc := NewAnalyticsService(db)
	ctx := context.Background()

	_, err := svc.RecentWorkouts(ctx, 1)
	assert.Error(t, err)
	_, err = svc.WaterIntakeByDay(ctx, 1)
	assert.Error(t, err)
	_, err = svc.LatestGoal(ctx, 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
