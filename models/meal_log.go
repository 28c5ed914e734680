package models

import "time"

type MealLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	MealType string    `gorm:"size:50" json:"meal_type"` // breakfast, lunch, ...
	FoodItem string    `gorm:"size:255" json:"food_item"`
	Calories float64   `json:"calories"`
	LogDate  time.Time `gorm:"type:date;index;not null" json:"log_date"`
}

func (MealLog) TableName() string { return "meal_log" }
