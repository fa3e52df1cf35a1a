package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/focusflow/focusflow/internal/domain/events"
	"go.uber.org/zap"
)

// Store layers JSON encoding and a change feed over a Backend.
// Subscribers are called synchronously after every successful write or delete.
type Store struct {
	backend Backend
	logger  *zap.Logger

	mu          sync.RWMutex
	subscribers map[int]events.Handler
	nextID      int
}

func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend:     backend,
		logger:      logger,
		subscribers: make(map[int]events.Handler),
	}
}

// NewMemory returns a store over a fresh MemoryBackend.
func NewMemory(logger *zap.Logger) *Store {
	return New(NewMemoryBackend(), logger)
}

// Subscribe registers fn for change events and returns a function that removes it.
func (s *Store) Subscribe(fn events.Handler) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Publish fans an event out to every subscriber.
func (s *Store) Publish(event events.StoreEvent) {
	s.mu.RLock()
	handlers := make([]events.Handler, 0, len(s.subscribers))
	for _, h := range s.subscribers {
		handlers = append(handlers, h)
	}
	s.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// Raw returns the stored bytes for key.
func (s *Store) Raw(ctx context.Context, key string) ([]byte, error) {
	return s.backend.Get(ctx, key)
}

// Put encodes value as JSON and writes it under key.
func (s *Store) Put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	s.Publish(events.StoreEvent{
		EventType: events.EventTypeStoreWrite,
		Key:       key,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.Publish(events.StoreEvent{
		EventType: events.EventTypeStoreDelete,
		Key:       key,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// LoadValue decodes the value under key into a T. A missing, unreadable or
// malformed value yields def.
func LoadValue[T any](ctx context.Context, s *Store, key string, def T) T {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Failed to read stored value, using default", zap.String("key", key), zap.Error(err))
		}
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Warn("Malformed stored value, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return out
}

// LoadList decodes a JSON array element by element. Elements that fail to
// decode are skipped; a value that is not an array yields an empty list.
func LoadList[T any](ctx context.Context, s *Store, key string) []T {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Failed to read stored list, using empty list", zap.String("key", key), zap.Error(err))
		}
		return []T{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("Malformed stored list, using empty list", zap.String("key", key), zap.Error(err))
		return []T{}
	}

	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			s.logger.Warn("Skipping malformed list element",
				zap.String("key", key),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// SaveList writes items under key. A nil slice is stored as an empty array.
func SaveList[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return s.Put(ctx, key, items)
}
