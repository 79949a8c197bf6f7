package socket

import (
    "context"
    "encoding/json"
    "fmt"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"
    "github.com/thinkly-edu/thinkly-backend/internal/logger"
)

const redisDialTimeout = 3 * time.Second

// RedisPubSub fans hub broadcasts across backend nodes. Each node publishes
// assistant-turn events to one shared channel and replays what the others
// publish into its local hub, so a student's websocket can live on any node.
type RedisPubSub struct {
    log       *logger.Logger
    client    *redis.Client
    channel   string

    mu        sync.Mutex
    cancel    context.CancelFunc
}

func NewRedisPubSub(log *logger.Logger, address, password, channel string) (*RedisPubSub, error) {
    client := redis.NewClient(&redis.Options{
        Addr:     address,
        Password: password,
    })
    ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil, fmt.Errorf("failed to reach redis at %s: %w", address, err)
    }
    return &RedisPubSub{
        log:     log.With("component", "RedisPubSub"),
        client:  client,
        channel: channel,
    }, nil
}

// StartSubscriber replays remote broadcasts into the local hub until Stop.
func (rp *RedisPubSub) StartSubscriber(hub *Hub) error {
    ctx, cancel := context.WithCancel(context.Background())
    rp.mu.Lock()
    rp.cancel = cancel
    rp.mu.Unlock()

    sub := rp.client.Subscribe(ctx, rp.channel)
    if _, err := sub.Receive(ctx); err != nil {
        cancel()
        return fmt.Errorf("failed to subscribe to %q: %w", rp.channel, err)
    }
    rp.log.Info("Subscribed to hub broadcast channel", "channel", rp.channel)

    go func() {
        defer sub.Close()
        for {
            select {
            case <-ctx.Done():
                return
            case raw, ok := <-sub.Channel():
                if !ok {
                    return
                }
                var msg Message
                if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
                    rp.log.Warn("Discarding malformed hub broadcast", "error", err)
                    continue
                }
                hub.localBroadcast(msg)
            }
        }
    }()
    return nil
}

// Publish pushes one hub message onto the shared channel for the other nodes.
func (rp *RedisPubSub) Publish(ctx context.Context, msg Message) error {
    payload, err := json.Marshal(msg)
    if err != nil {
        return err
    }
    return rp.client.Publish(ctx, rp.channel, payload).Err()
}

func (rp *RedisPubSub) Stop() {
    rp.mu.Lock()
    defer rp.mu.Unlock()
    if rp.cancel != nil {
        rp.cancel()
        rp.cancel = nil
    }
}
