package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/models"

	"gorm.io/gorm"
)

// DashboardLimit caps the workout and water series.
const DashboardLimit = 30

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type WorkoutEntry struct {
	ExerciseType string    `json:"exercise_type"`
	Duration     int       `json:"duration"`
	Intensity    string    `json:"intensity"`
	LogDate      time.Time `json:"log_date"`
}

type WaterDay struct {
	LogDate       time.Time `json:"log_date"`
	TotalQuantity float64   `json:"total_quantity"`
}

type GoalProgress struct {
	GoalType      string    `json:"goal_type"`
	TargetValue   float64   `json:"target_value"`
	DurationWeeks int       `json:"duration_weeks"`
	StartDate     time.Time `json:"start_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecentWorkouts returns the newest DashboardLimit workouts.
func (s *AnalyticsService) RecentWorkouts(ctx context.Context, userID uint) ([]WorkoutEntry, error) {
	out := []WorkoutEntry{}
	err := s.db.WithContext(ctx).
		Model(&models.WorkoutLog{}).
		Select("exercise_type", "duration", "intensity", "log_date").
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Order("id DESC").
		Limit(DashboardLimit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("recent workouts: %w", err)
	}
	return nonNil(out), nil
}

// WaterIntakeByDay sums water per log_date, newest day first.
func (s *AnalyticsService) WaterIntakeByDay(ctx context.Context, userID uint) ([]WaterDay, error) {
	out := []WaterDay{}
	err := s.db.WithContext(ctx).
		Model(&models.WaterIntake{}).
		Select("log_date, SUM(quantity) AS total_quantity").
		Where("user_id = ?", userID).
		Group("log_date").
		Order("log_date DESC").
		Limit(DashboardLimit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("water intake by day: %w", err)
	}
	return nonNil(out), nil
}

// LatestGoal returns the most recently created goal, or nil when the user has none.
func (s *AnalyticsService) LatestGoal(ctx context.Context, userID uint) (*GoalProgress, error) {
	var rows []GoalProgress
	err := s.db.WithContext(ctx).
		Model(&models.FitnessGoalLog{}).
		Select("goal_type", "target_value", "duration_weeks", "start_date", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("latest goal: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
