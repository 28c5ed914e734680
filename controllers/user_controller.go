package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shruti-ops/fitness-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type UserController struct {
	Users *services.UserService
	Log   *zap.Logger
}

func NewUserController(users *services.UserService, log *zap.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

// GET /user-profile
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	profile, err := uc.Users.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		uc.Log.Error("fetch profile", zap.Error(err), zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// POST /update-profile  {age, weight, height, fitness_goal}; omitted fields are cleared
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	var input services.ProfileUpdate
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	clearBlankFormFields(c, &input)

	err := uc.Users.UpdateProfile(c.Request.Context(), userID, input)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		uc.Log.Error("update profile", zap.Error(err), zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}

// clearBlankFormFields treats an empty form value as not supplied. Form
// binding allocates a zero value for "age=", which would store 0 instead of NULL.
func clearBlankFormFields(c *gin.Context, in *services.ProfileUpdate) {
	if c.ContentType() == binding.MIMEJSON {
		return
	}
	blank := func(key string) bool {
		v, ok := c.GetPostForm(key)
		return ok && strings.TrimSpace(v) == ""
	}
	if blank("age") {
		in.Age = nil
	}
	if blank("weight") {
		in.Weight = nil
	}
	if blank("height") {
		in.Height = nil
	}
	if blank("fitness_goal") {
		in.FitnessGoal = nil
	}
}
