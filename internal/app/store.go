package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/focusflow/focusflow/internal/api/middleware"
	"github.com/focusflow/focusflow/internal/infrastructure/cache"
	"github.com/focusflow/focusflow/internal/infrastructure/persistence/connection"
	"github.com/focusflow/focusflow/internal/infrastructure/persistence/migrations"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/focusflow/focusflow/pkg/logger"
	"go.uber.org/zap"
)

// Backing is an opened store together with the health checks of whatever sits behind it.
// Limiter is nil when rate limiting is disabled.
type Backing struct {
	Store   *store.Store
	Checks  map[string]func(ctx context.Context) error
	Details map[string]func() map[string]interface{}
	Limiter middleware.RateLimiter
	relay   func(ctx context.Context) error
	log     *logger.Logger
}

// OpenStore connects the backend selected by cfg.Store.Driver.
func OpenStore(cfg *config.Config, log *logger.Logger) (*Backing, error) {
	if log == nil {
		log = logger.NewNop()
	}
	b := &Backing{
		Checks:  make(map[string]func(ctx context.Context) error),
		Details: make(map[string]func() map[string]interface{}),
		log:     log,
	}
	storeLog := log.Named("store")
	limit := cfg.RateLimit
	if limit.Window <= 0 {
		limit.Window = time.Minute
	}

	switch cfg.Store.Driver {
	case "", "memory":
		b.Store = store.NewMemory(storeLog)

	case "sqlite", "postgres":
		db, err := connection.NewDatabase(cfg)
		if err != nil {
			return nil, err
		}
		if err := migrations.AutoMigrate(db, log.Logger); err != nil {
			db.Close()
			return nil, err
		}
		b.Store = store.New(store.NewGormBackend(db.DB), storeLog)
		b.Checks["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}

	case "redis":
		client, err := cache.NewRedisClient(cache.NewConfig(cfg), log.Named("redis"))
		if err != nil {
			return nil, err
		}
		backend := store.NewRedisBackend(client, storeLog)
		b.Store = store.New(backend, storeLog)
		b.Checks["redis"] = client.HealthCheck
		b.Details["redis"] = client.GetMetrics
		if limit.Requests > 0 {
			b.Limiter = middleware.NewRedisRateLimiter(client.Client(), cfg.Store.KeyPrefix, limit.Window, int64(limit.Requests))
		}
		b.relay = func(ctx context.Context) error {
			return backend.Relay(ctx, b.Store)
		}

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if b.Limiter == nil && limit.Requests > 0 {
		b.Limiter = middleware.NewMemoryRateLimiter(limit.Window, int64(limit.Requests))
	}

	log.Info("Store opened", zap.String("driver", cfg.Store.Driver))
	return b, nil
}

// StartRelay forwards changes made by other processes until ctx ends.
// It is a no-op for backends that cannot be shared.
func (b *Backing) StartRelay(ctx context.Context) {
	if b.relay == nil {
		return
	}
	go func() {
		if err := b.relay(ctx); err != nil && !errors.Is(err, context.Canceled) {
			b.log.Error("Store event relay stopped", zap.Error(err))
		}
	}()
}

func (b *Backing) Close() error {
	return b.Store.Close()
}
