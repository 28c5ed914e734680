package controllers

import (
	"net/http"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
	Log *zap.Logger
}

func NewAnalyticsController(svc *services.AnalyticsService, log *zap.Logger) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Log: log}
}

// GET /api/workout-data
func (h *AnalyticsController) GetWorkoutData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	out, err := h.Svc.RecentWorkouts(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("Error fetching workout data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch workout data"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/water-intake-data
func (h *AnalyticsController) GetWaterIntakeData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	out, err := h.Svc.WaterIntakeByDay(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("Error fetching water intake data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch water intake data"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/fitness-goal-progress  → latest goal or {}
func (h *AnalyticsController) GetFitnessGoalProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	goal, err := h.Svc.LatestGoal(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("Error fetching fitness goal progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fitness goal progress"})
		return
	}
	if goal == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type DailyProgressController struct {
	Svc *services.DailyProgressService
	Log *zap.Logger
}

func NewDailyProgressController(svc *services.DailyProgressService, log *zap.Logger) *DailyProgressController {
	return &DailyProgressController{Svc: svc, Log: log}
}

// GET /api/daily-progress?date=YYYY-MM-DD  (defaults to today)
func (h *DailyProgressController) GetDailyProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	var (
		out *services.DailyProgress
		err error
	)
	if raw := c.Query("date"); raw != "" {
		day, perr := time.Parse(time.DateOnly, raw)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		out, err = h.Svc.ForDay(c.Request.Context(), userID, day)
	} else {
		out, err = h.Svc.Today(c.Request.Context(), userID)
	}
	if err != nil {
		h.Log.Error("Error fetching daily progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch daily progress"})
		return
	}
	c.JSON(http.StatusOK, out)
}
