package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// CartHub pushes cart views to every websocket a session has open. A
// connection is an observer: when it closes, its subscription ends and later
// cart changes are no longer delivered to it.
type CartHub struct {
	carts *services.CartRegistry
	log   *zap.Logger

	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]context.CancelFunc // sessionID -> conns
}

// Command is what a client may send on the socket.
type Command struct {
	Type string `json:"type"` // "refresh"
}

func NewCartHub(carts *services.CartRegistry, log *zap.Logger) *CartHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartHub{
		carts:   carts,
		log:     log,
		clients: make(map[string]map[*websocket.Conn]context.CancelFunc),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/cart?session=
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.register(sid, conn, cancel)

	m, views := h.carts.Subscribe(ctx, sid)

	go h.writeLoop(sid, conn, views, cancel)
	go h.readLoop(ctx, sid, conn, m, cancel)
}

func (h *CartHub) writeLoop(sid string, conn *websocket.Conn, views <-chan services.CartView, cancel context.CancelFunc) {
	defer h.carts.Release(context.Background(), sid)
	defer h.unregister(sid, conn)
	for v := range views {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(v); err != nil {
			h.log.Debug("ws write failed", zap.String("session", sid), zap.Error(err))
			cancel()
			// drain until the subscription closes
			for range views {
			}
			return
		}
	}
}

func (h *CartHub) readLoop(ctx context.Context, sid string, conn *websocket.Conn, m *services.CartManager, cancel context.CancelFunc) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			h.log.Debug("ws bad command", zap.String("session", sid), zap.Error(err))
			continue
		}
		if cmd.Type == "refresh" {
			if err := m.Fetch(ctx); err != nil {
				h.log.Debug("ws refresh dropped", zap.String("session", sid), zap.Error(err))
			}
		}
	}
}

func (h *CartHub) register(sid string, conn *websocket.Conn, cancel context.CancelFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sid] == nil {
		h.clients[sid] = make(map[*websocket.Conn]context.CancelFunc)
	}
	h.clients[sid][conn] = cancel
}

func (h *CartHub) unregister(sid string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sid][conn]; ok {
		delete(h.clients[sid], conn)
		if len(h.clients[sid]) == 0 {
			delete(h.clients, sid)
		}
		conn.Close()
	}
}

// Connections counts open sockets of a session.
func (h *CartHub) Connections(sid string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sid])
}

// Close ends every subscription; used on shutdown.
func (h *CartHub) Close() {
	h.mu.Lock()
	cancels := make([]context.CancelFunc, 0)
	for _, conns := range h.clients {
		for _, cancel := range conns {
			cancels = append(cancels, cancel)
		}
	}
	h.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}
