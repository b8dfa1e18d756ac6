package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/metrics"
)

// Hub is the live broadcast registry. It holds every open WebSocket peer for
// the lifetime of the process; there is no persistence and no delivery
// guarantee. Construct one in main and inject it into the handlers.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client
}

// client wraps a connection with a write lock, since gorilla/websocket
// allows at most one concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// NewHub creates an empty registry.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Join adds a peer to the registry.
func (h *Hub) Join(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		return
	}
	h.clients[conn] = &client{conn: conn}
	metrics.WSClients.Set(float64(len(h.clients)))
}

// Leave removes a peer. Safe to call for peers that already left.
func (h *Hub) Leave(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	metrics.WSClients.Set(float64(len(h.clients)))
}

// Len returns the number of registered peers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast delivers v as JSON to every registered peer. Delivery runs in
// one goroutine per peer and is never awaited by the caller; a peer whose
// write fails is closed and removed from the registry. Errors are swallowed.
func (h *Hub) Broadcast(v interface{}) {
	msg, err := json.Marshal(v)
	if err != nil {
		log := logger.WithComponent("ws")
		log.Warn().Err(err).Msg("broadcast marshal failed")
		return
	}

	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		go func(c *client) {
			if err := c.write(msg); err != nil {
				metrics.BroadcastsFailed.Inc()
				h.Leave(c.conn)
				c.conn.Close()
				return
			}
			metrics.BroadcastsSent.Inc()
		}(c)
	}
}
