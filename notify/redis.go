// SPDX-License-Identifier: MIT

// Package notify fans sky events out over Redis pub/sub so every server
// instance can stream new stars to its live viewers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/armaan-choudhary/zola/sky"
)

// DefaultPrefix namespaces channels: "<prefix>:<slug>".
const DefaultPrefix = "zola:sky"

// RedisNotifier publishes and subscribes to sky events.
type RedisNotifier struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

var _ sky.Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier wraps client. An empty prefix selects DefaultPrefix.
func NewRedisNotifier(client *redis.Client, prefix string, log *slog.Logger) *RedisNotifier {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if log == nil {
		log = slog.Default()
	}

	return &RedisNotifier{client: client, prefix: prefix, log: log.With("component", "notify")}
}

// Channel returns the pub/sub channel for slug.
func (n *RedisNotifier) Channel(slug string) string {
	return fmt.Sprintf("%s:%s", n.prefix, slug)
}

// Publish implements sky.Notifier.
func (n *RedisNotifier) Publish(ctx context.Context, ev sky.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("notify: marshal event: %w", err)
	}
	if err := n.client.Publish(ctx, n.Channel(ev.Slug), data).Err(); err != nil {
		return fmt.Errorf("notify: publish %s: %w", n.Channel(ev.Slug), err)
	}

	return nil
}

// Subscribe streams events for slug until ctx is done or the returned close
// func is called. The subscription is confirmed before Subscribe returns, so
// events published afterwards are not missed.
func (n *RedisNotifier) Subscribe(ctx context.Context, slug string) (<-chan sky.Event, func() error, error) {
	ps := n.client.Subscribe(ctx, n.Channel(slug))
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, nil, fmt.Errorf("notify: subscribe %s: %w", n.Channel(slug), err)
	}

	out := make(chan sky.Event)
	done := make(chan struct{})
	msgs := ps.Channel()
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev sky.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					n.log.Warn("dropping malformed event", "channel", msg.Channel, "error", err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	// closeFn may be called more than once and unblocks a pending send.
	var once sync.Once
	var closeErr error
	closeFn := func() error {
		once.Do(func() {
			close(done)
			closeErr = ps.Close()
		})
		return closeErr
	}

	return out, closeFn, nil
}

// Ping checks the connection, for health reporting.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}
