package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/focusflow/focusflow/internal/domain/events"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
	ErrInvalidConfig   = errors.New("cache: invalid configuration")
)

// EventChannel carries store change events between processes sharing one redis.
const EventChannel = "focusflow:events"

// Config holds the configuration for Redis client
type Config struct {
	Addr             string
	Password         string
	DB               int
	PoolSize         int
	MinIdleConns     int
	MaxRetries       int
	ConnTimeout      time.Duration
	OperationTimeout time.Duration
	UseCompression   bool
	MaxKeyLength     int
	KeyPrefix        string
	HealthInterval   time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PoolSize:         20,
		MinIdleConns:     2,
		MaxRetries:       3,
		ConnTimeout:      5 * time.Second,
		OperationTimeout: 2 * time.Second,
		MaxKeyLength:     256,
		KeyPrefix:        "focusflow:",
		HealthInterval:   10 * time.Second,
	}
}

// NewConfig creates a Redis config from project configuration
func NewConfig(cfg *config.Config) *Config {
	c := DefaultConfig()
	c.Addr = cfg.Redis.RedisAddr()
	c.Password = cfg.Redis.Password
	c.DB = cfg.Redis.DB
	c.UseCompression = cfg.Store.Compress
	if cfg.Store.KeyPrefix != "" {
		c.KeyPrefix = cfg.Store.KeyPrefix
	}
	if cfg.Server.Timeout > 0 {
		c.OperationTimeout = cfg.Server.Timeout
	}
	return c
}

// RedisClient wraps the Redis client with key validation, prefixing,
// optional gzip compression and a background health flag.
type RedisClient struct {
	client    *redis.Client
	config    *Config
	logger    *zap.Logger
	hits      atomic.Int64
	misses    atomic.Int64
	health    int32 // 0 = healthy, 1 = unhealthy
	closeOnce sync.Once
	stop      chan struct{}
}

// NewRedisClient connects and starts the health check loop.
func NewRedisClient(cfg *Config, logger *zap.Logger) (*RedisClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &RedisClient{
		client: client,
		config: cfg,
		logger: logger,
		stop:   make(chan struct{}),
	}

	go r.healthCheckLoop()

	return r, nil
}

func (r *RedisClient) healthCheckLoop() {
	interval := r.config.HealthInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.config.OperationTimeout)
			if err := r.HealthCheck(ctx); err != nil {
				atomic.StoreInt32(&r.health, 1)
				r.logger.Error("Redis health check failed", zap.Error(err))
			} else {
				atomic.StoreInt32(&r.health, 0)
			}
			cancel()
		}
	}
}

// Client exposes the underlying connection pool.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// IsHealthy returns whether Redis is currently healthy
func (r *RedisClient) IsHealthy() bool {
	return atomic.LoadInt32(&r.health) == 0
}

// HealthCheck pings the server.
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// withContext wraps the context with a timeout if none is set
func (r *RedisClient) withContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.config.OperationTimeout)
	}
	return ctx, func() {}
}

func (r *RedisClient) validateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidConfig)
	}
	if len(key) > r.config.MaxKeyLength {
		return fmt.Errorf("%w: key too long (max %d characters)", ErrInvalidConfig, r.config.MaxKeyLength)
	}
	return nil
}

func (r *RedisClient) prefixKey(key string) string {
	return r.config.KeyPrefix + key
}

// Get returns the bytes stored under key, or ErrCacheNotFound.
func (r *RedisClient) Get(ctx context.Context, key string) ([]byte, error) {
	if err := r.validateKey(key); err != nil {
		return nil, err
	}
	if !r.IsHealthy() {
		return nil, ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefixKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.misses.Add(1)
			return nil, fmt.Errorf("%w: %s", ErrCacheNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}
	r.hits.Add(1)

	if r.config.UseCompression {
		return decompress(val)
	}
	return val, nil
}

// Set stores value under key. A zero ttl means no expiry.
func (r *RedisClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.validateKey(key); err != nil {
		return err
	}
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	if r.config.UseCompression {
		compressed, err := compress(value)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
		value = compressed
	}

	return r.client.Set(ctx, r.prefixKey(key), value, ttl).Err()
}

// Delete removes keys
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		if err := r.validateKey(key); err != nil {
			return err
		}
		prefixed[i] = r.prefixKey(key)
	}
	return r.client.Del(ctx, prefixed...).Err()
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}

// GetMetrics reports hit and miss counters.
func (r *RedisClient) GetMetrics() map[string]interface{} {
	hits := r.hits.Load()
	misses := r.misses.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return map[string]interface{}{
		"hits":     hits,
		"misses":   misses,
		"hit_rate": hitRate,
		"healthy":  r.IsHealthy(),
	}
}

// PublishEvent publishes a store event to other processes.
func (r *RedisClient) PublishEvent(ctx context.Context, event events.StoreEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, EventChannel, data).Err()
}

// SubscribeToEvents blocks delivering store events until ctx is cancelled
// or the callback returns an error.
func (r *RedisClient) SubscribeToEvents(ctx context.Context, callback func(events.StoreEvent) error) error {
	pubsub := r.client.Subscribe(ctx, EventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event events.StoreEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warn("Dropping malformed event", zap.Error(err))
				continue
			}
			if err := callback(event); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops the health loop and closes the connection pool.
func (r *RedisClient) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.stop)
		err = r.client.Close()
	})
	return err
}
