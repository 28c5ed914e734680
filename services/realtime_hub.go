package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait = 10 * time.Second

	// sendQueueSize events may wait per socket; a client further behind is dropped.
	sendQueueSize = 16
)

// WSClient is one open dashboard socket. Writes go through Send so pings and
// broadcasts never interleave on the connection.
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu    sync.Mutex
	queue chan []byte
	once  sync.Once
}

func (c *WSClient) Send(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.Conn.WriteMessage(messageType, data)
}

// Event is the JSON frame pushed to dashboards.
type Event struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
	log     *zap.Logger
}

func NewRealtimeHub(log *zap.Logger) *RealtimeHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{}), log: log}
}

// Register adds c and starts its writer goroutine.
func (h *RealtimeHub) Register(c *WSClient) {
	c.queue = make(chan []byte, sendQueueSize)
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
	go h.writeLoop(c)
}

func (h *RealtimeHub) writeLoop(c *WSClient) {
	for msg := range c.queue {
		if err := c.Send(websocket.TextMessage, msg); err != nil {
			h.log.Debug("realtime: drop client", zap.Uint("user_id", c.UserID), zap.Error(err))
			h.Unregister(c)
			return
		}
	}
}

// Unregister is safe to call more than once for the same client.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	// closed under the lock so Publish never enqueues on a closed queue
	c.once.Do(func() {
		if c.queue != nil {
			close(c.queue)
		}
	})
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Clients is the number of open sockets for userID.
func (h *RealtimeHub) Clients(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Publish queues {kind, data} for every socket the user has open and never
// waits on the network. A socket whose queue is full is dropped.
func (h *RealtimeHub) Publish(userID uint, kind string, data any) {
	msg, err := json.Marshal(Event{Kind: kind, Data: data})
	if err != nil {
		h.log.Warn("realtime: marshal event", zap.String("kind", kind), zap.Error(err))
		return
	}

	var slow []*WSClient
	h.mu.RLock()
	for c := range h.clients[userID] {
		select {
		case c.queue <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Debug("realtime: drop slow client", zap.Uint("user_id", userID))
		h.Unregister(c)
	}
}
