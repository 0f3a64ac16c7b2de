package telemetry

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientQueueSize = 8
	writeWait       = time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan Snapshot
}

// Hub fans snapshots out to websocket clients and keeps the latest one
type Hub struct {
	mu        sync.Mutex
	clients   map[*client]struct{}
	latest    Snapshot
	hasLatest bool
	metrics   *Metrics
}

// NewHub creates a hub feeding the given metrics, which may be nil
func NewHub(metrics *Metrics) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		metrics: metrics,
	}
}

// Publish records the snapshot and queues it to every client.
// Slow clients drop frames rather than stall the frame loop.
func (h *Hub) Publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = s
	h.hasLatest = true
	if h.metrics != nil {
		h.metrics.Observe(s)
	}

	for c := range h.clients {
		select {
		case c.send <- s:
		default:
		}
	}
}

// Latest returns the most recent snapshot
func (h *Hub) Latest() (Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.hasLatest
}

// Clients returns the number of connected websocket clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and streams snapshots until the client goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("telemetry: websocket upgrade: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan Snapshot, clientQueueSize)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.hasLatest {
		c.send <- h.latest
	}
	h.mu.Unlock()

	go c.writePump()
	c.readPump()

	h.remove(c)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump discards inbound messages; it returns when the connection fails
func (c *client) readPump() {
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for s := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(s); err != nil {
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
