package middlewares

import (
	"net/http"

	"github.com/Shruti-ops/fitness-diet-tracker/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionMiddleware loads (or starts) the cookie session for every request.
// A store failure is a 500; the request never silently continues as anonymous.
func SessionMiddleware(m *session.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.Load(c.Writer, c.Request)
		if err != nil {
			log.Error("session load failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Session store unavailable"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session attached by SessionMiddleware. It never
// returns nil; a request that skipped the middleware gets an empty session.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok && s != nil {
			return s
		}
	}
	return &session.Session{}
}

// CurrentUser is the authenticated identity, if any.
func CurrentUser(c *gin.Context) (*session.Record, bool) {
	s := CurrentSession(c)
	if !s.Authenticated() {
		return nil, false
	}
	return s.User, true
}
