package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/sse"
)

func newRealtimeFixture(t *testing.T) *RealtimeHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testLogger(t)
	return NewRealtimeHandler(log, sse.NewSSEHub(log))
}

// runStream drives Stream on its own goroutine the way gin would, returning a
// cancel func for the request context and a channel closed when the handler
// returns.
func runStream(h *RealtimeHandler, clientID uuid.UUID) (context.CancelFunc, chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/sse/stream?clientId="+clientID.String(), nil).WithContext(ctx)
		h.Stream(c)
	}()
	return cancel, exited
}

func subscribeStatus(h *RealtimeHandler, clientID uuid.UUID, channel string) int {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := strings.NewReader(fmt.Sprintf(`{"clientId":%q,"channel":%q}`, clientID, channel))
	c.Request = httptest.NewRequest(http.MethodPost, "/sse/subscribe", body)
	c.Request.Header.Set("Content-Type", "application/json")
	h.Subscribe(c)
	return w.Code
}

func waitSubscribed(t *testing.T, h *RealtimeHandler, clientID uuid.UUID, channel string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if subscribeStatus(h, clientID, channel) == http.StatusOK {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client %s never became subscribable on %s", clientID, channel)
}

func waitExited(t *testing.T, exited chan struct{}, what string) {
	t.Helper()
	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s did not exit", what)
	}
}

func TestStreamReconnectReplacesOldStream(t *testing.T) {
	h := newRealtimeFixture(t)
	clientID := uuid.New()

	cancelFirst, firstExited := runStream(h, clientID)
	defer cancelFirst()
	waitSubscribed(t, h, clientID, "package:first")

	// Same id reconnects while the first stream is still open. The first
	// stream must wind down without tearing out the replacement.
	cancelSecond, secondExited := runStream(h, clientID)
	waitExited(t, firstExited, "replaced stream")

	waitSubscribed(t, h, clientID, "package:second")

	cancelSecond()
	waitExited(t, secondExited, "second stream")

	// With no stream left the registration is gone.
	if code := subscribeStatus(h, clientID, "package:third"); code != http.StatusConflict {
		t.Fatalf("subscribe after disconnect = %d, want %d", code, http.StatusConflict)
	}
}

func TestCloseClientTwiceIsSafe(t *testing.T) {
	log := testLogger(t)
	hub := sse.NewSSEHub(log)
	client := hub.NewSSEClient()
	hub.AddChannel(client, "package:x")

	hub.CloseClient(client)
	hub.CloseClient(client)
}
