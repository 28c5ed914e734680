package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards JSON routes: no authenticated session means 401 and
// the handler never runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
			return
		}

		// Set both for convenience
		c.Set("userID", user.UserID)
		c.Set("email", user.Email)
		c.Next()
	}
}

// PageAuthMiddleware guards page routes by redirecting anonymous visitors to /login.
func PageAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GuestOnly sends already-authenticated visitors to target (login/register pages).
func GuestOnly(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
