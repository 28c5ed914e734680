package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shruti-ops/fitness-diet-tracker/testutil"
)

func TestDailyProgressTotalsToday(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	logs := NewActivityLogService(db, nil, fixedClock(testNow))
	_, err := logs.LogMeal(ctx, 1, MealInput{MealType: "lunch", FoodItem: "rice", Calories: 400})
	require.NoError(t, err)
	_, err = logs.LogMeal(ctx, 1, MealInput{MealType: "dinner", FoodItem: "soup", Calories: 250.5})
	require.NoError(t, err)
	_, err = logs.LogWater(ctx, 1, WaterInput{Quantity: 500})
	require.NoError(t, err)
	_, err = logs.LogWorkout(ctx, 1, WorkoutInput{ExerciseType: "run", Duration: 30})
	require.NoError(t, err)
	_, err = logs.LogWorkout(ctx, 1, WorkoutInput{ExerciseType: "lift", Duration: 45})
	require.NoError(t, err)

	// yesterday and another user don't count
	_, err = NewActivityLogService(db, nil, fixedClock(testNow.AddDate(0, 0, -1))).LogWater(ctx, 1, WaterInput{Quantity: 900})
	require.NoError(t, err)
	_, err = logs.LogWater(ctx, 2, WaterInput{Quantity: 900})
	require.NoError(t, err)

	got, err := NewDailyProgressService(db, fixedClock(testNow)).Today(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &DailyProgress{
		Date:            "2026-10-14",
		Calories:        650.5,
		Meals:           2,
		Hydration:       500,
		ExerciseMinutes: 75,
		Workouts:        2,
	}, got)
}

func TestDailyProgressEmptyDay(t *testing.T) {
	db := testutil.NewDB(t)

	got, err := NewDailyProgressService(db, fixedClock(testNow)).ForDay(context.Background(), 1, testNow.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", got.Date)
	assert.Zero(t, got.Calories)
	assert.Zero(t, got.Meals)
	assert.Zero(t, got.Workouts)
}

func TestDailyProgressDatabaseError(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CloseDB(t, db)

	_, err := NewDailyProgressService(db, fixedClock(testNow)).Today(context.Background(), 1)
	assert.ErrorContains(t, err, "daily meals")
}
