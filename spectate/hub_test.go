package spectate

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func TestBroadcastReachesSpectator(t *testing.T) {
	h := NewHub(&config.SpectateConfig{BroadcastInterval: 0.1})
	conn := dial(t, h)

	snap := &game.Snapshot{Tick: 42, Kills: 3, Player: game.PlayerView{Level: 2}}
	if !h.Broadcast(snap, time.Now()) {
		t.Fatal("broadcast skipped with a connected client")
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg stateMsg
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != "state" || msg.State == nil {
		t.Fatalf("message = %+v", msg)
	}
	if msg.State.Tick != 42 || msg.State.Kills != 3 || msg.State.Player.Level != 2 {
		t.Errorf("state = %+v", msg.State)
	}
}

func TestBroadcastThrottles(t *testing.T) {
	h := NewHub(&config.SpectateConfig{BroadcastInterval: 0.5})
	dial(t, h)

	now := time.Now()
	snap := &game.Snapshot{}
	if !h.Broadcast(snap, now) {
		t.Fatal("first broadcast skipped")
	}
	if h.Broadcast(snap, now.Add(100*time.Millisecond)) {
		t.Error("broadcast inside the interval was sent")
	}
	if !h.Broadcast(snap, now.Add(600*time.Millisecond)) {
		t.Error("broadcast after the interval was skipped")
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	h := NewHub(&config.SpectateConfig{BroadcastInterval: 0})
	if h.Broadcast(&game.Snapshot{}, time.Now()) {
		t.Error("broadcast sent with no clients")
	}
}

func TestCloseDisconnects(t *testing.T) {
	h := NewHub(&config.SpectateConfig{BroadcastInterval: 0})
	conn := dial(t, h)

	h.Close()
	if h.Clients() != 0 {
		t.Fatalf("clients = %d after close", h.Clients())
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close")
	}
	if h.Broadcast(&game.Snapshot{}, time.Now()) {
		t.Error("broadcast sent after close")
	}
}

func TestNilHub(t *testing.T) {
	var h *Hub
	if h.Broadcast(&game.Snapshot{}, time.Now()) || h.Clients() != 0 {
		t.Error("nil hub reported activity")
	}
	h.Close()
}
