package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/sse"
)

// defaultChannel is the pub/sub channel carrying dashboard events between
// replicas. Room-list updates and invoice batch progress all ride one
// channel; the per-package and per-batch routing lives inside the message.
const defaultChannel = "umrah:dashboard-events"

const dialTimeout = 5 * time.Second

// SSEBus fans dashboard events out across instances, so an invoice batch
// running on one replica still reaches a room list open against another.
type SSEBus interface {
	Publish(ctx context.Context, msg sse.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m sse.SSEMessage)) error
	Close() error
}

type dashboardBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewSSEBus(log *logger.Logger) (SSEBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	channel := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
	if channel == "" {
		channel = defaultChannel
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &dashboardBus{
		log:     log.With("client", "DashboardBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (bus *dashboardBus) Publish(ctx context.Context, msg sse.SSEMessage) error {
	if bus == nil || bus.rdb == nil {
		return fmt.Errorf("dashboard bus not initialized")
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode dashboard event: %w", err)
	}
	return bus.rdb.Publish(ctx, bus.channel, raw).Err()
}

// StartForwarder subscribes and replays every event from other replicas into
// onMsg, usually the local hub's Broadcast. It returns once the subscription
// is confirmed; delivery continues on a background goroutine until ctx ends.
func (bus *dashboardBus) StartForwarder(ctx context.Context, onMsg func(m sse.SSEMessage)) error {
	if bus == nil || bus.rdb == nil {
		return fmt.Errorf("dashboard bus not initialized")
	}
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := bus.rdb.Subscribe(ctx, bus.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go bus.forward(ctx, sub, onMsg)
	return nil
}

func (bus *dashboardBus) forward(ctx context.Context, sub *goredis.PubSub, onMsg func(m sse.SSEMessage)) {
	defer func() { _ = sub.Close() }()

	deliveries := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok || delivery == nil {
				return
			}
			msg, err := decodeEvent(delivery.Payload)
			if err != nil {
				bus.log.Warn("Dropping undecodable dashboard event", "error", err)
				continue
			}
			onMsg(msg)
		}
	}
}

func decodeEvent(payload string) (sse.SSEMessage, error) {
	var msg sse.SSEMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return sse.SSEMessage{}, err
	}
	if msg.Channel == "" {
		return sse.SSEMessage{}, fmt.Errorf("dashboard event without a channel")
	}
	return msg, nil
}

func (bus *dashboardBus) Close() error {
	if bus == nil || bus.rdb == nil {
		return nil
	}
	return bus.rdb.Close()
}
