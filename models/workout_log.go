package models

import "time"

type WorkoutLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	ExerciseType string    `gorm:"size:100" json:"exercise_type"`
	Duration     int       `json:"duration"` // minutes
	Intensity    string    `gorm:"size:50" json:"intensity"`
	LogDate      time.Time `gorm:"type:date;index;not null" json:"log_date"`
}

func (WorkoutLog) TableName() string { return "workout_log" }
