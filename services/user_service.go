package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shruti-ops/fitness-diet-tracker/models"
	"github.com/Shruti-ops/fitness-diet-tracker/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Profile is the fixed projection served by GET /user-profile. BMI fields are
// derived and only present when height and weight are usable.
type Profile struct {
	UserID      uint     `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Age         *int     `json:"age"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	FitnessGoal *string  `json:"fitness_goal"`
	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmi_category,omitempty"`
}

// ProfileUpdate replaces all four columns; a nil field is written as NULL.
type ProfileUpdate struct {
	Age         *int     `json:"age" form:"age"`
	Weight      *float64 `json:"weight" form:"weight"`
	Height      *float64 `json:"height" form:"height"`
	FitnessGoal *string  `json:"fitness_goal" form:"fitness_goal"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Select("user_id", "name", "email", "age", "weight", "height", "fitness_goal").
		Where("user_id = ?", userID).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p := &Profile{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Age:         user.Age,
		Weight:      user.Weight,
		Height:      user.Height,
		FitnessGoal: user.FitnessGoal,
	}
	if user.Height != nil && user.Weight != nil {
		if bmi, err := utils.CalculateBMI(*user.Height, *user.Weight); err == nil {
			p.BMI = &bmi
			p.BMICategory = utils.BMICategory(bmi)
		}
	}
	return p, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) error {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"age":          in.Age,
			"weight":       in.Weight,
			"height":       in.Height,
			"fitness_goal": in.FitnessGoal,
		})
	if res.Error != nil {
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
