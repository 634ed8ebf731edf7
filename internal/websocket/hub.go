package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBuffer     = 256
	broadcastQueue = 256
)

// Client represents a single connected WebSocket client
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	UserID uint
}

// Event is the envelope of every message pushed to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Audience selects who receives an event: the owning user and anyone holding
// the Resource/Action permission. A zero Audience reaches nobody.
type Audience struct {
	UserID   uint
	Resource string
	Action   string
}

// Authorizer reports whether userID holds the permission on resource.
type Authorizer func(ctx context.Context, userID uint, resource, action string) (bool, error)

type message struct {
	payload []byte
	to      Audience
}

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	authorize  Authorizer
	log        *zap.SugaredLogger
}

// NewHub initializes a new WS Hub instance. Connections are accepted from allowedOrigins only;
// an empty list accepts any origin. With a nil authorize, permission audiences are never matched.
func NewHub(allowedOrigins []string, authorize Authorizer, log *zap.SugaredLogger) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		broadcast:  make(chan message, broadcastQueue),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(origins) == 0 || origin == "" || origins[origin]
			},
		},
		authorize: authorize,
		log:       log,
	}
}

// Run starts the core dispatch loop for WebSocket events and stops when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debugw("websocket client connected", "userID", client.UserID)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.log.Debugw("websocket client disconnected", "userID", client.UserID)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.deliver(ctx, msg)
		}
	}
}

// deliver resolves the audience outside the lock, then sends to the clients still registered.
func (h *Hub) deliver(ctx context.Context, msg message) {
	h.mu.Lock()
	candidates := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		candidates = append(candidates, client)
	}
	h.mu.Unlock()

	allowed := make(map[uint]bool)
	recipients := candidates[:0]
	for _, client := range candidates {
		ok, seen := allowed[client.UserID]
		if !seen {
			ok = h.receives(ctx, client.UserID, msg.to)
			allowed[client.UserID] = ok
		}
		if ok {
			recipients = append(recipients, client)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range recipients {
		if !h.clients[client] {
			continue
		}
		select {
		case client.Send <- msg.payload:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) receives(ctx context.Context, userID uint, to Audience) bool {
	if to.UserID != 0 && to.UserID == userID {
		return true
	}
	if to.Resource == "" || h.authorize == nil {
		return false
	}
	ok, err := h.authorize(ctx, userID, to.Resource, to.Action)
	if err != nil {
		h.log.Warnw("websocket audience check failed", "userID", userID, "resource", to.Resource, "error", err)
		return false
	}
	return ok
}

// Publish queues an event for the clients in the audience. It never blocks the caller;
// when the queue is full the event is dropped.
func (h *Hub) Publish(event string, data any, to Audience) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		h.log.Errorw("failed to encode websocket event", "event", event, "error", err)
		return
	}
	select {
	case h.broadcast <- message{payload: payload, to: to}:
	default:
		h.log.Warnw("websocket queue full, event dropped", "event", event)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(message)

			// Fast track writing queued messages
			n := len(c.Send)
			for i := 0; i < n; i++ {
				_, _ = w.Write([]byte{'\n'})
				_, _ = w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		// Clients only listen; anything they send is discarded
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Warnw("websocket read failed", "userID", c.UserID, "error", err)
			}
			break
		}
	}
}

// ServeWs upgrades an already authenticated request. userID comes from the session middleware.
func (h *Hub) ServeWs(c *gin.Context, userID uint) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	client := &Client{Hub: h, Conn: conn, Send: make(chan []byte, sendBuffer), UserID: userID}
	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}
