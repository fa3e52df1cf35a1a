package connection

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/focusflow/focusflow/pkg/config"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

type Database struct {
	*gorm.DB
	driver string
}

// Driver reports which SQL dialect the connection speaks.
func (db *Database) Driver() string {
	return db.driver
}

// NewDatabase opens the SQL database named by cfg.Store.Driver (postgres or sqlite).
func NewDatabase(cfg *config.Config) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Store.Driver {
	case "postgres":
		dsn := cfg.Database.PostgresDSN()
		if err := pingPostgres(dsn); err != nil {
			return nil, err
		}
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Store.SQLitePath), gormConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}

	maxIdleConns := 10
	maxOpenConns := 100
	if cfg.Database.MaxIdleConns > 0 {
		maxIdleConns = cfg.Database.MaxIdleConns
	}
	if cfg.Database.MaxOpenConns > 0 {
		maxOpenConns = cfg.Database.MaxOpenConns
	}
	// sqlite serialises writers anyway
	if cfg.Store.Driver == "sqlite" {
		maxOpenConns = 1
		maxIdleConns = 1
	}
	lifetime := time.Hour
	if cfg.Database.ConnMaxLifetime > 0 {
		lifetime = cfg.Database.ConnMaxLifetime
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return &Database{
		DB:     db,
		driver: cfg.Store.Driver,
	}, nil
}

// pingPostgres checks connectivity before GORM takes over so that server
// errors surface with their code and detail.
func pingPostgres(dsn string) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to create sql.DB: %w", err)
	}
	defer sqlDB.Close()

	sqlDB.SetConnMaxLifetime(10 * time.Second)
	if err := sqlDB.Ping(); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("postgres error: code=%s, message=%s, detail=%s", pqErr.Code, pqErr.Message, pqErr.Detail)
		}
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
