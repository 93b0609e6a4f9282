package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord maps a Store key to its serialized collection.
type kvRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte
	UpdatedAt time.Time
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// GORMStore is a GORM implementation of Store backed by a single
// key-value table. Works with both the sqlite and postgres drivers.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore and migrates its table.
func NewGORMStore(db *gorm.DB) (*GORMStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_records: %w", err)
	}
	return &GORMStore{db: db}, nil
}

// Get returns the blob stored under key, or (nil, nil) if absent.
func (s *GORMStore) Get(key string) ([]byte, error) {
	var rec kvRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return rec.Value, nil
}

// Set upserts the blob under key.
func (s *GORMStore) Set(key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}
