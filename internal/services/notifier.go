package services

import (
	"context"

	"github.com/safarnesia/umrah-backend/internal/clients/redis"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/sse"
)

// Notifier delivers dashboard events. With a Redis bus configured the event
// also reaches clients attached to other replicas; without one it stays on
// the local hub.
type Notifier interface {
	Notify(ctx context.Context, msg sse.SSEMessage)
}

type sseNotifier struct {
	log *logger.Logger
	hub *sse.SSEHub
	bus redis.SSEBus
}

func NewSSENotifier(baseLog *logger.Logger, hub *sse.SSEHub, bus redis.SSEBus) Notifier {
	return &sseNotifier{
		log: baseLog.With("service", "SSENotifier"),
		hub: hub,
		bus: bus,
	}
}

func (n *sseNotifier) Notify(ctx context.Context, msg sse.SSEMessage) {
	if n.bus != nil {
		if err := n.bus.Publish(ctx, msg); err != nil {
			n.log.Warn("Redis publish failed, falling back to local broadcast", "error", err, "channel", msg.Channel)
		} else {
			return
		}
	}
	if n.hub != nil {
		n.hub.Broadcast(msg)
	}
}
