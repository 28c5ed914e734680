package controllers

import (
	"net/http"

	"github.com/Shruti-ops/fitness-diet-tracker/metrics"
	"github.com/Shruti-ops/fitness-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ActivityLogController struct {
	Logs    *services.ActivityLogService
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewActivityLogController(logs *services.ActivityLogService, m *metrics.Metrics, log *zap.Logger) *ActivityLogController {
	return &ActivityLogController{Logs: logs, Metrics: m, Log: log}
}

// POST /log-workout  {exercise_type, duration, intensity}
func (ac *ActivityLogController) LogWorkout(c *gin.Context) {
	var input services.WorkoutInput
	userID, ok := ac.bind(c, &input)
	if !ok {
		return
	}
	_, err := ac.Logs.LogWorkout(c.Request.Context(), userID, input)
	ac.respond(c, "workout", err, "Workout logged successfully!", "Failed to log workout")
}

// POST /log-meal  {meal_type, food_item, calories}
func (ac *ActivityLogController) LogMeal(c *gin.Context) {
	var input services.MealInput
	userID, ok := ac.bind(c, &input)
	if !ok {
		return
	}
	_, err := ac.Logs.LogMeal(c.Request.Context(), userID, input)
	ac.respond(c, "meal", err, "Meal logged successfully!", "Failed to log meal")
}

// POST /log-water  {quantity}
func (ac *ActivityLogController) LogWater(c *gin.Context) {
	var input services.WaterInput
	userID, ok := ac.bind(c, &input)
	if !ok {
		return
	}
	_, err := ac.Logs.LogWater(c.Request.Context(), userID, input)
	ac.respond(c, "water", err, "Water intake logged successfully!", "Failed to log water intake")
}

// POST /log-fitness-goal  {goal_type, target_value, duration_weeks}
func (ac *ActivityLogController) LogFitnessGoal(c *gin.Context) {
	var input services.GoalInput
	userID, ok := ac.bind(c, &input)
	if !ok {
		return
	}
	_, err := ac.Logs.LogGoal(c.Request.Context(), userID, input)
	ac.respond(c, "goal", err, "Fitness goal logged successfully!", "Failed to log fitness goal")
}

// bind checks the session user before touching the body, so an anonymous call
// never reaches the database.
func (ac *ActivityLogController) bind(c *gin.Context, input any) (uint, bool) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return 0, false
	}
	if err := c.ShouldBind(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return 0, false
	}
	return userID, true
}

func (ac *ActivityLogController) respond(c *gin.Context, kind string, err error, okMsg, failMsg string) {
	if ac.Metrics != nil {
		ac.Metrics.ActivityLogged(kind, err)
	}
	if err != nil {
		ac.Log.Error("Database Error", zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": failMsg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}
