package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// NewUpgrader builds a WebSocket upgrader that accepts the configured
// origins. Requests without an Origin header come from non-browser clients
// and are accepted.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || originAllowed(allowedOrigins, origin)
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}
