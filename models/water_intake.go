package models

import "time"

type WaterIntake struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Quantity float64   `json:"quantity"` // e.g. 250 (ml)
	LogDate  time.Time `gorm:"type:date;index;not null" json:"log_date"`
}

func (WaterIntake) TableName() string { return "water_intake" }
