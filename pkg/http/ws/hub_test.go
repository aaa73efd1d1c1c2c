package ws

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSendAndCloseAll(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	id := uuid.New()
	conn := NewConnection(nil, zerolog.New(io.Discard))
	hub.Register(id, conn)
	assert.Equal(t, 1, hub.Count())

	msg, err := NewMessage(TypePong, nil, "r1")
	require.NoError(t, err)
	require.NoError(t, hub.SendTo(id, msg))

	got := <-conn.sendCh
	assert.Equal(t, TypePong, got.Type)
	assert.Equal(t, "r1", got.RequestID)

	hub.CloseAll()
	assert.Equal(t, 0, hub.Count())
	assert.ErrorIs(t, conn.Send(msg), ErrConnectionClosed)
	assert.ErrorIs(t, hub.SendTo(id, msg), ErrSessionNotFound)
}

func TestHubRegisterReplacesSession(t *testing.T) {
	hub := NewHub(zerolog.New(io.Discard))
	id := uuid.New()
	first := NewConnection(nil, zerolog.New(io.Discard))
	second := NewConnection(nil, zerolog.New(io.Discard))

	hub.Register(id, first)
	hub.Register(id, second)

	assert.Equal(t, 1, hub.Count())
	assert.ErrorIs(t, first.Send(Message{Type: TypePing}), ErrConnectionClosed)
	assert.NoError(t, second.Send(Message{Type: TypePing}))
}

func TestSendQueueFull(t *testing.T) {
	conn := NewConnection(nil, zerolog.New(io.Discard))
	for i := 0; i < cap(conn.sendCh); i++ {
		require.NoError(t, conn.Send(Message{Type: TypePong}))
	}
	assert.ErrorIs(t, conn.Send(Message{Type: TypePong}), ErrSendQueueFull)
}

func TestNewMessagePayload(t *testing.T) {
	msg, err := NewMessage(TypeRenderResult, RenderResultPayload{Format: "pipe", Output: "a | b | c"}, "")
	require.NoError(t, err)

	var payload RenderResultPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "a | b | c", payload.Output)
}
