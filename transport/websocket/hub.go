package websocket

import (
	"log/slog"
	"sync"
)

// Hub maps identities to their live connection and fans room notifications out to them.
type Hub struct {
	logger *slog.Logger

	clientsMutex sync.RWMutex
	clients      map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]*client),
	}
}

// Notify never blocks: a client that cannot keep up is disconnected.
func (that *Hub) Notify(playerIDs []string, event string, payload any) {
	log := that.logger.With("method", "Notify", "event", event)

	data, err := encode(event, payload)
	if err != nil {
		log.Error("failed to encode notification", "error", err)
		return
	}

	that.clientsMutex.RLock()
	defer that.clientsMutex.RUnlock()

	for _, playerID := range playerIDs {
		c, ok := that.clients[playerID]
		if !ok {
			continue
		}

		if !c.enqueue(data) {
			log.Warn("send buffer overflow, dropping client", "playerID", playerID)
		}
	}
}

// register binds the identity to c. A previous connection of the same identity is closed.
func (that *Hub) register(playerID string, c *client) {
	that.clientsMutex.Lock()
	previous, ok := that.clients[playerID]
	that.clients[playerID] = c
	that.clientsMutex.Unlock()

	if ok && previous != c {
		previous.close()
	}
}

// unregister reports whether c was still the live connection of the identity.
func (that *Hub) unregister(playerID string, c *client) bool {
	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if that.clients[playerID] != c {
		return false
	}

	delete(that.clients, playerID)

	return true
}
