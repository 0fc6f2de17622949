package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/sse"
)

// RealtimeHandler owns the live SSE connections. The dashboard opens one
// stream per tab with a client-generated id, then manages channel membership
// through the subscribe/unsubscribe endpoints using the same id.
type RealtimeHandler struct {
	log *logger.Logger
	hub *sse.SSEHub

	mu      sync.RWMutex
	clients map[uuid.UUID]*sse.SSEClient
}

func NewRealtimeHandler(log *logger.Logger, hub *sse.SSEHub) *RealtimeHandler {
	return &RealtimeHandler{
		log:     log.With("handler", "RealtimeHandler"),
		hub:     hub,
		clients: make(map[uuid.UUID]*sse.SSEClient),
	}
}

func (h *RealtimeHandler) Stream(c *gin.Context) {
	clientID, err := uuid.Parse(c.Query("clientId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_client_id", err)
		return
	}

	h.mu.Lock()
	// A reconnect with the same id replaces the stale stream.
	if existing, ok := h.clients[clientID]; ok {
		h.hub.CloseClient(existing)
		delete(h.clients, clientID)
	}
	client := h.hub.NewSSEClient()
	client.ID = clientID
	h.clients[clientID] = client
	h.mu.Unlock()

	// Channels may be pre-subscribed on the stream URL itself, so the
	// client cannot miss events fired between connect and subscribe.
	for _, channel := range c.QueryArray("channel") {
		h.hub.AddChannel(client, channel)
	}

	h.log.Info("SSE stream open", "client_id", clientID)
	h.hub.ServeHTTP(c.Writer, c.Request, client)

	// A reconnect may already have replaced this entry; only remove it if it
	// is still ours, or the fresh stream loses its registration.
	h.mu.Lock()
	if h.clients[clientID] == client {
		delete(h.clients, clientID)
	}
	h.mu.Unlock()
	h.hub.CloseClient(client)
	h.log.Debug("SSE stream closed", "client_id", clientID)
}

type channelRequest struct {
	ClientID uuid.UUID `json:"clientId" binding:"required"`
	Channel  string    `json:"channel" binding:"required"`
}

func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	var req channelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	h.mu.RLock()
	client, exists := h.clients[req.ClientID]
	h.mu.RUnlock()
	if !exists {
		RespondError(c, http.StatusConflict, "no_active_stream", nil)
		return
	}

	h.hub.AddChannel(client, req.Channel)
	RespondOK(c, gin.H{"subscribed": req.Channel})
}

func (h *RealtimeHandler) Unsubscribe(c *gin.Context) {
	var req channelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	h.mu.RLock()
	client, exists := h.clients[req.ClientID]
	h.mu.RUnlock()
	if !exists {
		RespondError(c, http.StatusConflict, "no_active_stream", nil)
		return
	}

	h.hub.RemoveChannel(client, req.Channel)
	RespondOK(c, gin.H{"unsubscribed": req.Channel})
}
