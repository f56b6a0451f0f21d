// Package transport carries the game protocol over WebSocket. Each
// connection gets a client with separate read and write pumps; the hub
// maps seated player ids to their live client so the engine can address
// individuals without knowing about sockets.
package transport

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

type Hub struct {
	log *zap.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: map[string]*Client{},
	}
}

// Send implements game.Broadcaster. Events for players without a live
// connection are dropped; the reconnect snapshot brings them current.
func (h *Hub) Send(playerID string, ev game.Event) {
	h.mu.RLock()
	c, ok := h.clients[playerID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	raw, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("event marshal failed", zap.String("type", string(ev.Type)), zap.Error(err))
		return
	}
	c.enqueue(raw)
}

// bind attaches a client to a seat. A newer connection for the same
// seat supersedes the old one, which is closed.
func (h *Hub) bind(playerID string, c *Client) {
	h.mu.Lock()
	prev, had := h.clients[playerID]
	h.clients[playerID] = c
	h.mu.Unlock()

	if had && prev != c {
		prev.close()
	}
}

// unbind detaches a client, but only if it is still the seat's current
// connection.
func (h *Hub) unbind(playerID string, c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[playerID] != c {
		return false
	}
	delete(h.clients, playerID)
	return true
}

func (h *Hub) Connected(playerID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[playerID]
	return ok
}
