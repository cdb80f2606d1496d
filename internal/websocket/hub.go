package websocket

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"gliitz-backend/internal/middleware"
	"gliitz-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub forwards a member's live updates (assistant replies from concierge
// turns, booking status changes from the dispatch workers) to their open
// sockets. One Redis subscription per member, shared across their devices;
// it starts with the first socket and stops with the last.
type Hub struct {
	mu      sync.RWMutex
	sockets map[uuid.UUID][]*websocket.Conn
	cancels map[uuid.UUID]context.CancelFunc
	redis   *redis.Client
	auth    *middleware.JWTAuth
}

func NewHub(redisClient *redis.Client, auth *middleware.JWTAuth) *Hub {
	return &Hub{
		sockets: make(map[uuid.UUID][]*websocket.Conn),
		cancels: make(map[uuid.UUID]context.CancelFunc),
		redis:   redisClient,
		auth:    auth,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on WebSocket upgrades, so the access token
	// rides a query param and goes through the same validation as the
	// Authorization header.
	userID, err := h.auth.ParseToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.attach(userID, conn)

	// The client never sends payloads; reading only detects disconnect.
	go func() {
		defer h.detach(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) attach(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sockets[userID] = append(h.sockets[userID], conn)

	if len(h.sockets[userID]) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancels[userID] = cancel
		go h.forwardUpdates(ctx, userID)
	}

	log.Printf("WebSocket connected: user %s (total: %d)", userID, len(h.sockets[userID]))
}

func (h *Hub) detach(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.sockets[userID]
	for i, c := range conns {
		if c == conn {
			h.sockets[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	if len(h.sockets[userID]) == 0 {
		delete(h.sockets, userID)
		if cancel, ok := h.cancels[userID]; ok {
			cancel()
			delete(h.cancels, userID)
		}
	}

	log.Printf("WebSocket disconnected: user %s", userID)
}

// forwardUpdates pumps the member's pub/sub channel into their sockets until
// the last one detaches.
func (h *Hub) forwardUpdates(ctx context.Context, userID uuid.UUID) {
	pubsub := h.redis.Subscribe(ctx, models.UserUpdatesChannel(userID))
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(userID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.sockets[userID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
