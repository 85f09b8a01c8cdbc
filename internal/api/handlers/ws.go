package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/astrabot/odin-insight/internal/ws"
)

// WSHandler upgrades HTTP connections to websocket clients of the hub.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler for the given hub. Origin checks use
// the same allowlist as the CORS middleware.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub:      hub,
		upgrader: ws.NewUpgrader(allowedOrigins),
	}
}

// Serve handles GET requests that upgrade to a websocket connection.
//
// Endpoint: GET /ws
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	ws.ServeWS(h.hub, h.upgrader, w, r)
}
