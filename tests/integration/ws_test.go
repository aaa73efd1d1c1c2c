//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	wsmsg "github.com/nafes-platform/question-service/pkg/http/ws"
)

func TestWebSocketPreview(t *testing.T) {
	url := envOrDefault("INTEGRATION_WS_URL", "ws://localhost:8080/ws/preview")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial preview socket: %v", err)
	}
	defer conn.Close()

	msg, err := wsmsg.NewMessage(wsmsg.TypeParseRequest, wsmsg.ParseRequestPayload{
		Input: "# ما لون السماء؟\n- زرقاء ✓\n- خضراء",
	}, "it-1")
	if err != nil {
		t.Fatalf("build message: %v", err)
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write parse_request: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reply wsmsg.Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if reply.Type != wsmsg.TypeParseResult || reply.RequestID != "it-1" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	var payload wsmsg.ParseResultPayload
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if !payload.Result.IsValid || payload.Result.Data.CorrectAnswer != "زرقاء" {
		t.Fatalf("unexpected preview result: %+v", payload.Result)
	}
}
