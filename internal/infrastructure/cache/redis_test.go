package cache

import (
	"testing"
	"time"

	"github.com/focusflow/focusflow/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	payload := []byte(`[{"id":"1","text":"write report","completed":false}]`)

	packed, err := compress(payload)
	require.NoError(t, err)
	assert.NotEqual(t, payload, packed)

	unpacked, err := decompress(packed)
	require.NoError(t, err)
	assert.Equal(t, payload, unpacked)
}

func TestNewRedisClientRequiresAddr(t *testing.T) {
	_, err := NewRedisClient(&Config{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGetMetrics(t *testing.T) {
	r := &RedisClient{config: DefaultConfig()}
	assert.Equal(t, float64(0), r.GetMetrics()["hit_rate"])

	r.hits.Add(3)
	r.misses.Add(1)
	metrics := r.GetMetrics()
	assert.Equal(t, int64(3), metrics["hits"])
	assert.Equal(t, int64(1), metrics["misses"])
	assert.Equal(t, float64(75), metrics["hit_rate"])
	assert.Equal(t, true, metrics["healthy"])
}

func TestValidateKey(t *testing.T) {
	r := &RedisClient{config: DefaultConfig()}

	assert.NoError(t, r.validateKey("focusflow-tasks"))
	assert.ErrorIs(t, r.validateKey(""), ErrInvalidConfig)

	long := make([]byte, r.config.MaxKeyLength+1)
	for i := range long {
		long[i] = 'k'
	}
	assert.ErrorIs(t, r.validateKey(string(long)), ErrInvalidConfig)
	assert.Equal(t, "focusflow:focusflow-tasks", r.prefixKey("focusflow-tasks"))
}

func TestNewConfig(t *testing.T) {
	cfg := &config.Config{
		Redis:  config.RedisConfig{Host: "cache", Port: 6380, DB: 2},
		Store:  config.StoreConfig{KeyPrefix: "ff:", Compress: true},
		Server: config.ServerConfig{Timeout: 3 * time.Second},
	}

	c := NewConfig(cfg)
	assert.Equal(t, "cache:6380", c.Addr)
	assert.Equal(t, 2, c.DB)
	assert.Equal(t, "ff:", c.KeyPrefix)
	assert.True(t, c.UseCompression)
	assert.Equal(t, 3*time.Second, c.OperationTimeout)
}
