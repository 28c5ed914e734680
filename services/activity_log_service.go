package services

import (
	"context"
	"fmt"

	"github.com/Shruti-ops/fitness-diet-tracker/models"

	"gorm.io/gorm"
)

// Event kinds pushed to dashboard sockets after a successful insert.
const (
	EventWorkoutLogged = "workout.logged"
	EventMealLogged    = "meal.logged"
	EventWaterLogged   = "water.logged"
	EventGoalLogged    = "goal.logged"
)

// Publisher receives an event for every row written. RealtimeHub implements it.
type Publisher interface {
	Publish(userID uint, kind string, data any)
}

type WorkoutInput struct {
	ExerciseType string `json:"exercise_type" form:"exercise_type" binding:"required"`
	Duration     int    `json:"duration" form:"duration" binding:"gte=0"`
	Intensity    string `json:"intensity" form:"intensity"`
}

type MealInput struct {
	MealType string  `json:"meal_type" form:"meal_type" binding:"required"`
	FoodItem string  `json:"food_item" form:"food_item" binding:"required"`
	Calories float64 `json:"calories" form:"calories" binding:"gte=0"`
}

type WaterInput struct {
	Quantity float64 `json:"quantity" form:"quantity" binding:"gt=0"`
}

type GoalInput struct {
	GoalType      string  `json:"goal_type" form:"goal_type" binding:"required"`
	TargetValue   float64 `json:"target_value" form:"target_value"`
	DurationWeeks int     `json:"duration_weeks" form:"duration_weeks" binding:"gte=0"`
}

// ActivityLogService appends workout, meal, water and goal rows stamped with
// the current day. Each call is one independent insert.
type ActivityLogService struct {
	db    *gorm.DB
	pub   Publisher
	clock Clock
}

func NewActivityLogService(db *gorm.DB, pub Publisher, clock Clock) *ActivityLogService {
	return &ActivityLogService{db: db, pub: pub, clock: clock}
}

func (s *ActivityLogService) LogWorkout(ctx context.Context, userID uint, in WorkoutInput) (*models.WorkoutLog, error) {
	row := &models.WorkoutLog{
		UserID:       userID,
		ExerciseType: in.ExerciseType,
		Duration:     in.Duration,
		Intensity:    in.Intensity,
		LogDate:      dayStart(s.clock.now()),
	}
	if err := s.insert(ctx, row); err != nil {
		return nil, fmt.Errorf("log workout: %w", err)
	}
	s.publish(userID, EventWorkoutLogged, row)
	return row, nil
}

func (s *ActivityLogService) LogMeal(ctx context.Context, userID uint, in MealInput) (*models.MealLog, error) {
	row := &models.MealLog{
		UserID:   userID,
		MealType: in.MealType,
		FoodItem: in.FoodItem,
		Calories: in.Calories,
		LogDate:  dayStart(s.clock.now()),
	}
	if err := s.insert(ctx, row); err != nil {
		return nil, fmt.Errorf("log meal: %w", err)
	}
	s.publish(userID, EventMealLogged, row)
	return row, nil
}

func (s *ActivityLogService) LogWater(ctx context.Context, userID uint, in WaterInput) (*models.WaterIntake, error) {
	row := &models.WaterIntake{
		UserID:   userID,
		Quantity: in.Quantity,
		LogDate:  dayStart(s.clock.now()),
	}
	if err := s.insert(ctx, row); err != nil {
		return nil, fmt.Errorf("log water: %w", err)
	}
	s.publish(userID, EventWaterLogged, row)
	return row, nil
}

// LogGoal records a new goal starting today; it becomes the current goal.
func (s *ActivityLogService) LogGoal(ctx context.Context, userID uint, in GoalInput) (*models.FitnessGoalLog, error) {
	now := s.clock.now()
	row := &models.FitnessGoalLog{
		UserID:        userID,
		GoalType:      in.GoalType,
		TargetValue:   in.TargetValue,
		DurationWeeks: in.DurationWeeks,
		StartDate:     dayStart(now),
		CreatedAt:     now,
	}
	if err := s.insert(ctx, row); err != nil {
		return nil, fmt.Errorf("log fitness goal: %w", err)
	}
	s.publish(userID, EventGoalLogged, row)
	return row, nil
}

func (s *ActivityLogService) insert(ctx context.Context, row any) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *ActivityLogService) publish(userID uint, kind string, row any) {
	if s.pub != nil {
		s.pub.Publish(userID, kind, row)
	}
}
