// Package ws provides the websocket hub that pushes price and statistics
// updates to connected UI clients, replacing polling on the frontend.
package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// PriceUpdateMessage announces a distinct market price change for a token.
type PriceUpdateMessage struct {
	Type    string  `json:"type"`
	TokenID string  `json:"tokenId"`
	Price   float64 `json:"price"`
}

// StatsUpdateMessage carries re-derived holder statistics after a price change.
type StatsUpdateMessage struct {
	Type    string      `json:"type"`
	TokenID string      `json:"tokenId"`
	Data    interface{} `json:"data"`
}

// Hub manages all active websocket connections and broadcasts messages to
// them. Registration, unregistration and broadcast all flow through channels
// serviced by Run.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a Hub. Run must be started in its own goroutine before
// clients connect.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run services the hub's channels. It blocks and should run in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("websocket client connected, total: %d", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("websocket client disconnected, total: %d", count)

		case message := <-h.broadcast:
			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			var stale []*Client
			for _, client := range clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop the connection rather than block.
					stale = append(stale, client)
				}
			}

			h.mu.Lock()
			for _, client := range stale {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast marshals the message and queues it for all connected clients.
// It is fire-and-forget: marshal failures are logged and dropped.
func (h *Hub) Broadcast(message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("failed to marshal websocket message: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Printf("websocket broadcast queue full, message dropped")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
