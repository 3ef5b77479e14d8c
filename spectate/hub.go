// Package spectate streams read-only session snapshots to websocket clients.
package spectate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
)

const (
	sendBuffer   = 8
	writeTimeout = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stateMsg wraps a snapshot on the wire.
type stateMsg struct {
	Type     string         `json:"type"` // "state"
	ClientID string         `json:"client_id,omitempty"`
	State    *game.Snapshot `json:"state"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to connected spectators. A nil Hub ignores
// every call.
type Hub struct {
	interval time.Duration

	mu      sync.Mutex
	clients map[string]*client
	last    time.Time
	closed  bool
}

// NewHub creates a hub that broadcasts at most once per configured interval.
func NewHub(cfg *config.SpectateConfig) *Hub {
	return &Hub{
		interval: time.Duration(cfg.BroadcastInterval * float64(time.Second)),
		clients:  make(map[string]*client),
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("spectator upgrade failed", "error", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		conn.Close()
		return
	}
	slog.Info("spectator_joined", "client", c.id, "remote", r.RemoteAddr)

	go h.writeLoop(c)

	// Spectators are read-only; reads only detect the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
	slog.Info("spectator_left", "client", c.id)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("spectator write failed", "client", c.id, "error", err)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends s to every spectator unless the previous broadcast was
// less than one interval ago. Slow clients miss frames instead of blocking.
// It reports whether the snapshot was sent.
func (h *Hub) Broadcast(s *game.Snapshot, now time.Time) bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || len(h.clients) == 0 {
		return false
	}
	if !h.last.IsZero() && now.Sub(h.last) < h.interval {
		return false
	}
	h.last = now

	msg, err := json.Marshal(stateMsg{Type: "state", State: s})
	if err != nil {
		slog.Error("failed to encode snapshot", "error", err)
		return false
	}
	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
	return true
}

// Close disconnects every spectator and rejects new ones.
func (h *Hub) Close() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}
