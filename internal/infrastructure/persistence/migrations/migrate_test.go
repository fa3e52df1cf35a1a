package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/focusflow/focusflow/internal/infrastructure/persistence/connection"
	"github.com/focusflow/focusflow/internal/store"
	"github.com/focusflow/focusflow/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openSQLite(t *testing.T) *connection.Database {
	t.Helper()
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "focusflow.db"),
	}}
	db, err := connection.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	require.NoError(t, AutoMigrate(db, zap.NewNop()))

	history, err := GetMigrationHistory(db)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Version)
}

func TestAutoMigrateSeedsTheme(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, AutoMigrate(db, zap.NewNop()))

	s := store.New(store.NewGormBackend(db.DB), zap.NewNop())
	assert.Equal(t, "light", store.LoadValue(context.Background(), s, store.KeyTheme, ""))

	// an existing preference survives a re-run
	require.NoError(t, s.Put(context.Background(), store.KeyTheme, "dark"))
	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	assert.Equal(t, "dark", store.LoadValue(context.Background(), s, store.KeyTheme, ""))
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := connection.NewDatabase(&config.Config{Store: config.StoreConfig{Driver: "mysql"}})
	assert.ErrorIs(t, err, connection.ErrUnsupportedDriver)
}
