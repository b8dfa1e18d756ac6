package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// testPeer is one upgraded connection pair: the server side registered with
// the hub and the client side used to observe deliveries.
type testPeer struct {
	server *websocket.Conn
	client *websocket.Conn
}

func newTestPeer(t *testing.T) *testPeer {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	serverConns := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case server := <-serverConns:
		t.Cleanup(func() { server.Close() })
		return &testPeer{server: server, client: client}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server connection")
		return nil
	}
}

func (p *testPeer) readMessage(t *testing.T) string {
	t.Helper()
	p.client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := p.client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(msg)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestHubJoinLeave(t *testing.T) {
	hub := NewHub()
	a := newTestPeer(t)

	hub.Join(a.server)
	hub.Join(a.server) // duplicate join is a no-op
	if got := hub.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	hub.Leave(a.server)
	hub.Leave(a.server) // idempotent
	if got := hub.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}

func TestHubBroadcastReachesOnlyRegistered(t *testing.T) {
	hub := NewHub()
	a := newTestPeer(t)
	b := newTestPeer(t)

	hub.Join(a.server)
	hub.Join(b.server)
	hub.Leave(a.server)

	hub.Broadcast(map[string]string{"type": "test", "value": "hello"})

	msg := b.readMessage(t)
	if !strings.Contains(msg, "hello") {
		t.Errorf("b received %q, want it to contain %q", msg, "hello")
	}

	// a left before the broadcast and must receive nothing.
	a.client.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := a.client.ReadMessage(); err == nil {
		t.Error("a should not have received the broadcast")
	}
}

func TestHubPrunesFailedPeers(t *testing.T) {
	hub := NewHub()
	a := newTestPeer(t)
	b := newTestPeer(t)

	hub.Join(a.server)
	hub.Join(b.server)

	// Kill b's server-side connection so delivery to it fails.
	b.server.Close()

	hub.Broadcast(map[string]string{"type": "test"})
	waitFor(t, func() bool { return hub.Len() == 1 })

	// a still gets messages.
	hub.Broadcast(map[string]string{"type": "again"})
	a.readMessage(t)
	msg := a.readMessage(t)
	if !strings.Contains(msg, "again") {
		t.Errorf("a received %q, want it to contain %q", msg, "again")
	}

	// After a also dies, the registry drains to empty.
	a.server.Close()
	hub.Broadcast(map[string]string{"type": "final"})
	waitFor(t, func() bool { return hub.Len() == 0 })
}

func TestHubBroadcastEmptyRegistry(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(map[string]string{"type": "noop"}) // must not panic
	if got := hub.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}
