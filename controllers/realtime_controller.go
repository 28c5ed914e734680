package controllers

import (
	"net/http"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const wsPingInterval = 25 * time.Second

type RealtimeController struct {
	RT  *services.RealtimeHub
	Log *zap.Logger

	upgrader websocket.Upgrader
}

func NewRealtimeController(rt *services.RealtimeHub, log *zap.Logger) *RealtimeController {
	// default CheckOrigin: same host only; the session cookie is the credential
	return &RealtimeController{RT: rt, Log: log}
}

// GET /ws/dashboard  pushes {kind, data} for each log the user writes
func (rc *RealtimeController) DashboardWS(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not logged in"})
		return
	}

	conn, err := rc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.Log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(wsPingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Send(websocket.PingMessage, nil); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
