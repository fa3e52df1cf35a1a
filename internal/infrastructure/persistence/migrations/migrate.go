package migrations

import (
	"errors"
	"fmt"
	"time"

	"github.com/focusflow/focusflow/internal/infrastructure/persistence/connection"
	"github.com/focusflow/focusflow/internal/store"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MigrationRecord tracks the migration history
type MigrationRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;unique"`
	Version   int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// AutoMigrate creates the document table and records each applied model.
func AutoMigrate(db *connection.Database, logger *zap.Logger) error {
	logger.Info("Starting automatic database migration...", zap.String("driver", db.Driver()))

	if err := db.AutoMigrate(&MigrationRecord{}); err != nil {
		logger.Error("Failed to create migrations table", zap.Error(err))
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var lastVersion int
		if err := tx.Model(&MigrationRecord{}).Select("COALESCE(MAX(version), 0)").Scan(&lastVersion).Error; err != nil {
			return fmt.Errorf("failed to get last version: %w", err)
		}

		models := []interface{}{
			&store.KVRecord{},
		}

		for i, model := range models {
			modelName := fmt.Sprintf("%T", model)

			var record MigrationRecord
			err := tx.Where("name = ?", modelName).First(&record).Error
			isNewMigration := errors.Is(err, gorm.ErrRecordNotFound)

			if err := tx.AutoMigrate(model); err != nil {
				logger.Error("Failed to migrate model",
					zap.String("model", modelName),
					zap.Error(err),
				)
				return fmt.Errorf("failed to migrate %s: %w", modelName, err)
			}

			if isNewMigration {
				record = MigrationRecord{
					Name:      modelName,
					Version:   lastVersion + i + 1,
					AppliedAt: time.Now().UTC(),
				}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("failed to record migration for %s: %w", modelName, err)
				}
				logger.Info("Applied new migration",
					zap.String("model", modelName),
					zap.Int("version", record.Version),
				)
			}
		}

		if err := seedDefaults(tx); err != nil {
			return err
		}

		logger.Info("Database migration completed successfully")
		return nil
	})
}

// seedDefaults writes the default theme so a fresh database renders light mode.
func seedDefaults(db *gorm.DB) error {
	theme := store.KVRecord{
		Key:       store.KeyTheme,
		Value:     datatypes.JSON(`"light"`),
		UpdatedAt: time.Now().UTC(),
	}
	if err := db.Where(store.KVRecord{Key: store.KeyTheme}).FirstOrCreate(&theme).Error; err != nil {
		return fmt.Errorf("failed to seed default theme: %w", err)
	}
	return nil
}

// GetMigrationHistory returns the history of applied migrations
func GetMigrationHistory(db *connection.Database) ([]MigrationRecord, error) {
	var records []MigrationRecord
	err := db.Order("version ASC").Find(&records).Error
	return records, err
}
