package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/models"

	"gorm.io/gorm"
)

// DailyProgress is one day of logged activity for a user.
type DailyProgress struct {
	Date            string  `json:"date"`
	Calories        float64 `json:"calories"`
	Meals           int64   `json:"meals"`
	Hydration       float64 `json:"hydration"`
	ExerciseMinutes int64   `json:"exercise_minutes"`
	Workouts        int64   `json:"workouts"`
}

type DailyProgressService struct {
	db    *gorm.DB
	clock Clock
}

func NewDailyProgressService(db *gorm.DB, clock Clock) *DailyProgressService {
	return &DailyProgressService{db: db, clock: clock}
}

// Today is ForDay for the clock's current day.
func (s *DailyProgressService) Today(ctx context.Context, userID uint) (*DailyProgress, error) {
	return s.ForDay(ctx, userID, s.clock.now())
}

// ForDay totals meals, water and workouts logged on day's calendar date, read
// in the clock's location so it matches what the log calls stamped.
func (s *DailyProgressService) ForDay(ctx context.Context, userID uint, day time.Time) (*DailyProgress, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.clock.now().Location())
	out := &DailyProgress{Date: start.Format(time.DateOnly)}

	type total struct {
		Sum   float64
		Count int64
	}
	sum := func(model any, column string) (total, error) {
		var t total
		err := s.db.WithContext(ctx).
			Model(model).
			Select(fmt.Sprintf("COALESCE(SUM(%s), 0) AS sum, COUNT(*) AS count", column)).
			Where("user_id = ? AND log_date = ?", userID, start).
			Scan(&t).Error
		return t, err
	}

	meals, err := sum(&models.MealLog{}, "calories")
	if err != nil {
		return nil, fmt.Errorf("daily meals: %w", err)
	}
	water, err := sum(&models.WaterIntake{}, "quantity")
	if err != nil {
		return nil, fmt.Errorf("daily water: %w", err)
	}
	workouts, err := sum(&models.WorkoutLog{}, "duration")
	if err != nil {
		return nil, fmt.Errorf("daily workouts: %w", err)
	}

	out.Calories, out.Meals = meals.Sum, meals.Count
	out.Hydration = water.Sum
	out.ExerciseMinutes, out.Workouts = int64(workouts.Sum), workouts.Count
	return out, nil
}
