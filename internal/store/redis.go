package store

import (
	"context"
	"errors"
	"time"

	"github.com/focusflow/focusflow/internal/domain/events"
	"github.com/focusflow/focusflow/internal/infrastructure/cache"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RedisBackend keeps documents in redis and announces every change on the
// shared event channel so other processes can refresh.
type RedisBackend struct {
	client *cache.RedisClient
	source string
	logger *zap.Logger
}

func NewRedisBackend(client *cache.RedisClient, logger *zap.Logger) *RedisBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisBackend{
		client: client,
		source: uuid.NewString(),
		logger: logger,
	}
}

// Source identifies this process on the event channel.
func (b *RedisBackend) Source() string {
	return b.source
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.client.Set(ctx, key, value, 0); err != nil {
		return err
	}
	b.announce(ctx, events.EventTypeStoreWrite, key)
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := b.client.Delete(ctx, key); err != nil {
		return err
	}
	b.announce(ctx, events.EventTypeStoreDelete, key)
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}

func (b *RedisBackend) announce(ctx context.Context, eventType, key string) {
	event := events.StoreEvent{
		EventType: eventType,
		Key:       key,
		Source:    b.source,
		Timestamp: time.Now().UTC(),
	}
	if err := b.client.PublishEvent(ctx, event); err != nil {
		b.logger.Error("Failed to publish store event", zap.String("key", key), zap.Error(err))
	}
}

// Relay forwards store changes made by other processes into s until ctx ends.
func (b *RedisBackend) Relay(ctx context.Context, s *Store) error {
	return b.client.SubscribeToEvents(ctx, func(event events.StoreEvent) error {
		if event.Source == b.source {
			return nil
		}
		s.Publish(event)
		return nil
	})
}
