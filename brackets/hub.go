package brackets

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Message types pushed to viewers.
const (
	MessageStateUpdated = "STATE_UPDATED"
	MessageReset        = "TOURNAMENT_RESET"
)

// WebSocketMessage is the envelope broadcast to connected viewers.
type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans tournament updates out to every connected viewer. There is a
// single tournament per deployment, so there is a single broadcast set
// rather than per-tournament rooms.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.logger.Info("viewer connected", slog.Int("viewers", len(h.clients)))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.logger.Info("viewer disconnected", slog.Int("viewers", len(h.clients)))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop the update rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast marshals and queues a message for every connected viewer. A
// marshal failure is logged and dropped; live updates are best effort, the
// state of record lives in storage.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	data, err := json.Marshal(WebSocketMessage{Type: messageType, Payload: payload})
	if err != nil {
		h.logger.Error("failed to marshal websocket message", slog.Any("error", err))
		return
	}
	h.broadcast <- data
}
