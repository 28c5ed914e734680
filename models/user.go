package models

// User maps the users table. Profile columns are nullable; an update that
// omits one writes NULL.
type User struct {
	ID          uint     `gorm:"column:user_id;primaryKey" json:"user_id"`
	Name        string   `gorm:"size:100" json:"name"`
	Email       string   `gorm:"size:255;index;not null" json:"email"` // not unique, see DESIGN.md
	Password    string   `gorm:"not null" json:"-"`                    // argon2id PHC string
	Age         *int     `json:"age"`
	Weight      *float64 `json:"weight"` // kg
	Height      *float64 `json:"height"` // cm
	FitnessGoal *string  `gorm:"size:255" json:"fitness_goal"`
}

func (User) TableName() string { return "users" }
