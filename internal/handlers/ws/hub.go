package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/friendships-game/partyserver/internal/broadcast"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"go.uber.org/zap"
)

// Hub tracks live connections and implements broadcast.Publisher. It keeps
// no room state of its own: broadcast recipients are resolved from the
// game's roster at send time, so membership changes take effect on the
// very next event.
type Hub struct {
	mu          sync.RWMutex
	clients     map[string]*Client
	sessionRepo sessionRepo.Repository
	logger      *zap.Logger
}

// NewHub creates a new connection hub.
func NewHub(repo sessionRepo.Repository, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:     make(map[string]*Client),
		sessionRepo: repo,
		logger:      logger,
	}
}

// Register adds a client and returns a cleanup function.
func (h *Hub) Register(c *Client) func() {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()

	h.logger.Info("connection registered", zap.String("conn_id", c.ID))

	return func() { h.unregister(c) }
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if current, ok := h.clients[c.ID]; ok && current == c {
		delete(h.clients, c.ID)
	}
	h.mu.Unlock()

	c.closeSend()
	h.logger.Info("connection unregistered", zap.String("conn_id", c.ID))
}

// Send delivers an event to a single connection. Unknown connections are
// dropped silently; delivery is fire-and-forget.
func (h *Hub) Send(connID string, event broadcast.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("event marshal failed", zap.String("event", event.Name), zap.Error(err))
		return
	}

	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	c.enqueue(data, h.logger)
}

// Broadcast delivers an event to every connected player of the game,
// skipping excludeID when non-empty.
func (h *Hub) Broadcast(gameID string, event broadcast.Event, excludeID string) {
	game, err := h.sessionRepo.GetGame(context.Background(), &sessionRepo.GetGameInput{GameID: gameID})
	if err != nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("event marshal failed", zap.String("event", event.Name), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, p := range game.Players {
		if p.ID == excludeID {
			continue
		}
		if c, ok := h.clients[p.ID]; ok {
			c.enqueue(data, h.logger)
		}
	}
}

// ConnectionCount returns the number of registered connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
