package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub tracks live preview sessions so they can be closed on shutdown.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Connection
	logger   zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		sessions: make(map[uuid.UUID]*Connection),
		logger:   logger,
	}
}

// Register adds a session, replacing any connection already using the id.
func (h *Hub) Register(sessionID uuid.UUID, conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.sessions[sessionID]; exists {
		old.Close()
	}
	h.sessions[sessionID] = conn
	h.logger.Debug().Str("session_id", sessionID.String()).Msg("preview session registered")
}

// Unregister closes and removes a session.
func (h *Hub) Unregister(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.sessions[sessionID]; exists {
		conn.Close()
		delete(h.sessions, sessionID)
		h.logger.Debug().Str("session_id", sessionID.String()).Msg("preview session unregistered")
	}
}

// SendTo delivers a message to one session.
func (h *Hub) SendTo(sessionID uuid.UUID, msg Message) error {
	h.mu.RLock()
	conn, exists := h.sessions[sessionID]
	h.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}
	return conn.Send(msg)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// CloseAll closes every session.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.sessions {
		conn.Close()
		delete(h.sessions, id)
	}
	h.logger.Info().Msg("preview sessions closed")
}
