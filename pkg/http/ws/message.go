package ws

import (
	"encoding/json"

	"github.com/nafes-platform/question-service/internal/question/parser"
)

// MessageType constants for the live preview protocol.
const (
	// Client -> Server
	TypeParseRequest  = "parse_request"
	TypeRenderRequest = "render_request"
	TypePing          = "ping"

	// Server -> Client
	TypeParseResult  = "parse_result"
	TypeRenderResult = "render_result"
	TypeError        = "error"
	TypePong         = "pong"
)

// Message wraps all WebSocket payloads with type and optional request ID.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// NewMessage marshals payload into a Message.
func NewMessage(msgType string, payload interface{}, requestID string) (Message, error) {
	msg := Message{Type: msgType, RequestID: requestID}
	if payload == nil {
		return msg, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	msg.Payload = data
	return msg, nil
}

// Client Messages (incoming)

type ParseRequestPayload struct {
	Input string `json:"input"`
}

type RenderRequestPayload struct {
	Question parser.Question `json:"question"`
	Format   string          `json:"format"`
}

// Server Messages (outgoing)

type ParseResultPayload struct {
	Result parser.Result `json:"result"`
}

type RenderResultPayload struct {
	Format string `json:"format"`
	Output string `json:"output"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
