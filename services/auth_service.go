package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shruti-ops/fitness-diet-tracker/models"
	"github.com/Shruti-ops/fitness-diet-tracker/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register hashes the password and inserts the user. Email uniqueness is not
// checked here.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate returns the lowest-id user with this email whose password
// verifies, or ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var candidates []models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("user_id ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	for i := range candidates {
		if utils.CheckPasswordHash(password, candidates[i].Password) {
			return &candidates[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
