package question

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	httperrors "github.com/nafes-platform/question-service/pkg/http/errors"
	"github.com/nafes-platform/question-service/pkg/http/ws"
)

// PreviewHandler serves live parse previews over WebSocket so editors can
// show diagnostics while a teacher types.
type PreviewHandler struct {
	svc      *Service
	hub      *ws.Hub
	upgrader *websocket.Upgrader
	logger   zerolog.Logger
}

func NewPreviewHandler(svc *Service, hub *ws.Hub, upgrader *websocket.Upgrader, logger zerolog.Logger) *PreviewHandler {
	return &PreviewHandler{svc: svc, hub: hub, upgrader: upgrader, logger: logger.With().Str("component", "preview_ws").Logger()}
}

// Routes registers GET /ws/preview.
func (h *PreviewHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/preview", h.HandleWebSocket)
}

// HandleWebSocket upgrades the request and serves messages until the client
// disconnects or the hub closes the session.
func (h *PreviewHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	sessionID := uuid.New()
	logger := h.logger.With().Str("session_id", sessionID.String()).Logger()
	c := ws.NewConnection(conn, logger)
	h.hub.Register(sessionID, c)
	defer h.hub.Unregister(sessionID)

	go c.WritePump()

	ctx := r.Context()
	c.ReadPump(func(msg ws.Message) error {
		reply := h.handleMessage(ctx, msg)
		return c.Send(reply)
	})
}

func (h *PreviewHandler) handleMessage(ctx context.Context, msg ws.Message) ws.Message {
	switch msg.Type {
	case ws.TypePing:
		return ws.Message{Type: ws.TypePong, RequestID: msg.RequestID}

	case ws.TypeParseRequest:
		var payload ws.ParseRequestPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return errorMessage(httperrors.ErrCodeInvalidPayload, "invalid parse_request payload", msg.RequestID)
		}
		res, err := h.svc.Preview(ctx, payload.Input)
		if errors.Is(err, ErrInputTooLarge) {
			return errorMessage(httperrors.ErrCodeInputTooLarge, err.Error(), msg.RequestID)
		}
		if err != nil {
			return errorMessage(httperrors.ErrCodeInternalError, "preview failed", msg.RequestID)
		}
		return mustMessage(ws.TypeParseResult, ws.ParseResultPayload{Result: res}, msg.RequestID)

	case ws.TypeRenderRequest:
		var payload ws.RenderRequestPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return errorMessage(httperrors.ErrCodeInvalidPayload, "invalid render_request payload", msg.RequestID)
		}
		out, err := h.svc.Render(payload.Question, payload.Format)
		if err != nil {
			return errorMessage(httperrors.ErrCodeUnsupportedFormat, err.Error(), msg.RequestID)
		}
		return mustMessage(ws.TypeRenderResult, ws.RenderResultPayload{Format: payload.Format, Output: out}, msg.RequestID)

	default:
		return errorMessage(httperrors.ErrCodeUnknownMessageType, "unknown message type: "+msg.Type, msg.RequestID)
	}
}

func errorMessage(code, message, requestID string) ws.Message {
	return mustMessage(ws.TypeError, ws.ErrorPayload{Code: code, Message: message}, requestID)
}

// mustMessage builds a message from payload types that always marshal.
func mustMessage(msgType string, payload interface{}, requestID string) ws.Message {
	msg, err := ws.NewMessage(msgType, payload, requestID)
	if err != nil {
		return ws.Message{Type: ws.TypeError, RequestID: requestID}
	}
	return msg
}
