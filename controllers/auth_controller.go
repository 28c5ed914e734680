package controllers

import (
	"errors"
	"net/http"

	"github.com/Shruti-ops/fitness-diet-tracker/middlewares"
	"github.com/Shruti-ops/fitness-diet-tracker/services"
	"github.com/Shruti-ops/fitness-diet-tracker/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AuthController struct {
	Auth     *services.AuthService
	Sessions *session.Manager
	Log      *zap.Logger
}

func NewAuthController(auth *services.AuthService, sessions *session.Manager, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions, Log: log}
}

// POST /register  (form or JSON)
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "Missing registration fields")
		return
	}

	user, err := ac.Auth.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		ac.Log.Error("register failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error registering user")
		return
	}

	s := middlewares.CurrentSession(c)
	if err := ac.Sessions.Authenticate(c.Request.Context(), c.Writer, s, session.Record{UserID: user.ID, Email: user.Email}); err != nil {
		ac.Log.Error("register: start session", zap.Error(err), zap.Uint("user_id", user.ID))
		c.String(http.StatusInternalServerError, "Error registering user")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := ac.Auth.Authenticate(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.String(http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		ac.Log.Error("login failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error logging in user")
		return
	}

	s := middlewares.CurrentSession(c)
	if err := ac.Sessions.Authenticate(c.Request.Context(), c.Writer, s, session.Record{UserID: user.ID, Email: user.Email}); err != nil {
		ac.Log.Error("login: start session", zap.Error(err), zap.Uint("user_id", user.ID))
		c.String(http.StatusInternalServerError, "Error logging in user")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// GET /logout  (no guard; logging out twice is fine)
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Destroy(c.Request.Context(), c.Writer, middlewares.CurrentSession(c)); err != nil {
		ac.Log.Error("logout failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to log out")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// GET /user-info
func (ac *AuthController) UserInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
}
