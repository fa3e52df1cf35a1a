package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is one collection document in SQL storage.
type KVRecord struct {
	Key       string         `gorm:"primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the KVRecord model
func (KVRecord) TableName() string {
	return "kv_records"
}

// GormBackend stores documents in the kv_records table of a postgres or sqlite database.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// keyEq quotes the column name; "key" is a keyword in some dialects.
func keyEq(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var record KVRecord
	result := b.db.WithContext(ctx).Where(keyEq(key)).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return []byte(record.Value), nil
}

func (b *GormBackend) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	record := KVRecord{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (b *GormBackend) Delete(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where(keyEq(key)).Delete(&KVRecord{}).Error
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
