package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("store: key not found")
	ErrInvalidKey = errors.New("store: invalid key")
)

// Backend is a raw key-value persistence layer. Get returns ErrNotFound for
// a key that was never written or has been deleted.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
