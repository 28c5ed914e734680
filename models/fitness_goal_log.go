package models

import "time"

// FitnessGoalLog is append-only; the newest row by CreatedAt is the current goal.
type FitnessGoalLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	GoalType      string    `gorm:"size:100" json:"goal_type"`
	TargetValue   float64   `json:"target_value"`
	DurationWeeks int       `json:"duration_weeks"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (FitnessGoalLog) TableName() string { return "fitness_goal_log" }
