package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestFeedReachesWebsocketSubscriber(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the hub a moment to register the client before publishing.
	time.Sleep(50 * time.Millisecond)

	feed := NewFeed(hub, nil, "", zap.NewNop())
	feed.Publish("geofence_locations", ActionInsert, map[string]any{"id": 1, "name": "HQ"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Table != "geofence_locations" || ev.Action != ActionInsert {
		t.Errorf("event = %+v, want geofence_locations INSERT", ev)
	}
	if ev.ID == "" {
		t.Error("event id should be set")
	}
}

func TestHubBroadcast_NonBlockingWhenSaturated(t *testing.T) {
	// Hub not running: the buffered channel fills, further broadcasts must
	// drop instead of blocking the caller.
	hub := NewHub(zap.NewNop())
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Broadcast([]byte("x"))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a saturated hub")
	}
}
