package routes

import (
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/controllers"
	"github.com/Shruti-ops/fitness-diet-tracker/metrics"
	"github.com/Shruti-ops/fitness-diet-tracker/middlewares"
	"github.com/Shruti-ops/fitness-diet-tracker/services"
	"github.com/Shruti-ops/fitness-diet-tracker/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the router needs; main builds it from config.
type Deps struct {
	DB        *gorm.DB
	Sessions  *session.Manager
	Hub       *services.RealtimeHub
	Metrics   *metrics.Metrics
	Log       *zap.Logger
	PublicDir string
	Clock     services.Clock

	// QueryTimeout bounds each session request's context; zero means no bound.
	QueryTimeout time.Duration
}

func SetupRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Hub == nil {
		d.Hub = services.NewRealtimeHub(d.Log)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log), middlewares.MetricsMiddleware(d.Metrics))

	health := controllers.NewHealthController(d.DB)
	r.GET("/healthz", health.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	pages := controllers.NewPageController(d.PublicDir)
	auth := controllers.NewAuthController(services.NewAuthService(d.DB), d.Sessions, d.Log)
	users := controllers.NewUserController(services.NewUserService(d.DB), d.Log)
	logs := controllers.NewActivityLogController(services.NewActivityLogService(d.DB, d.Hub, d.Clock), d.Metrics, d.Log)
	analytics := controllers.NewAnalyticsController(services.NewAnalyticsService(d.DB), d.Log)
	daily := controllers.NewDailyProgressController(services.NewDailyProgressService(d.DB, d.Clock), d.Log)
	realtime := controllers.NewRealtimeController(d.Hub, d.Log)

	// Everything below carries a session cookie
	web := r.Group("/")
	web.Use(middlewares.QueryTimeout(d.QueryTimeout), middlewares.SessionMiddleware(d.Sessions, d.Log))
	{
		web.GET("/", pages.Serve("register.html"))
		web.GET("/register", middlewares.GuestOnly("/home"), pages.Serve("register.html"))
		web.GET("/login", middlewares.GuestOnly("/home"), pages.Serve("login.html"))

		web.POST("/register", auth.Register)
		web.POST("/login", auth.Login)
		web.GET("/logout", auth.Logout)
	}

	// Protected pages redirect to /login
	site := web.Group("/")
	site.Use(middlewares.PageAuthMiddleware())
	{
		site.GET("/home", pages.Serve("home.html"))
		site.GET("/profile", pages.Serve("profile.html"))
		site.GET("/analytics", pages.Serve("analytics.html"))
	}

	// Protected JSON routes answer 401
	api := web.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user-info", auth.UserInfo)

		api.POST("/log-workout", logs.LogWorkout)
		api.POST("/log-meal", logs.LogMeal)
		api.POST("/log-water", logs.LogWater)
		api.POST("/log-fitness-goal", logs.LogFitnessGoal)

		api.GET("/user-profile", users.GetProfile)
		api.POST("/update-profile", users.UpdateProfile)

		api.GET("/api/workout-data", analytics.GetWorkoutData)
		api.GET("/api/water-intake-data", analytics.GetWaterIntakeData)
		api.GET("/api/fitness-goal-progress", analytics.GetFitnessGoalProgress)
		api.GET("/api/daily-progress", daily.GetDailyProgress)

		api.GET("/ws/dashboard", realtime.DashboardWS)
	}

	return r
}
