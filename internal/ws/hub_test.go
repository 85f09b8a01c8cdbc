package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// waitForClients polls until the hub reaches the expected connection count.
// Registration flows through Run's channel, so it is asynchronous from the
// dialer's point of view.
func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d clients, got %d", want, hub.ClientCount())
}

func setupHubServer(t *testing.T, allowedOrigins []string) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	go hub.Run()

	upgrader := NewUpgrader(allowedOrigins)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, upgrader, w, r)
	}))
	t.Cleanup(server.Close)

	return hub, server
}

func TestHub_Broadcast(t *testing.T) {
	hub, server := setupHubServer(t, nil)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	defer conn.Close()

	waitForClients(t, hub, 1)

	hub.Broadcast(PriceUpdateMessage{
		Type:    "priceUpdate",
		TokenID: "token1",
		Price:   5500000000,
	})

	//nolint:errcheck // A missed deadline surfaces as a read failure below.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read broadcast: %v", err)
	}

	var msg PriceUpdateMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("Failed to decode broadcast: %v", err)
	}
	if msg.Type != "priceUpdate" || msg.TokenID != "token1" {
		t.Errorf("Unexpected message: %+v", msg)
	}
	if msg.Price != 5500000000 {
		t.Errorf("Expected price 5500000000, got %v", msg.Price)
	}
}

func TestHub_ClientCount(t *testing.T) {
	hub, server := setupHubServer(t, nil)
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	if hub.ClientCount() != 0 {
		t.Fatalf("Expected no clients before dialing, got %d", hub.ClientCount())
	}

	first, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	second, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	defer second.Close()

	waitForClients(t, hub, 2)

	first.Close()
	waitForClients(t, hub, 1)
}

func TestNewUpgrader_OriginCheck(t *testing.T) {
	_, server := setupHubServer(t, []string{"http://allowed.example"})
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	t.Run("accepts an allowed origin", func(t *testing.T) {
		header := http.Header{"Origin": []string{"http://allowed.example"}}
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		if err != nil {
			t.Fatalf("Expected upgrade to succeed, got %v", err)
		}
		conn.Close()
	})

	t.Run("rejects an unknown origin", func(t *testing.T) {
		header := http.Header{"Origin": []string{"http://evil.example"}}
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
		if err == nil {
			t.Fatal("Expected upgrade to fail")
		}
		if resp != nil && resp.StatusCode != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("accepts a missing origin", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("Expected upgrade to succeed, got %v", err)
		}
		conn.Close()
	})
}
