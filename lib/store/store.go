// Package store persists the whole collection as one snapshot record in a
// local sqlite database. Every save fully overwrites the record; there is no
// versioning and no partial write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/icco/cinevault/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultKey matches the storage key the browser version kept its
// collection under.
const DefaultKey = "cinevault_collection"

type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// Store reads and writes the single keyed snapshot.
type Store struct {
	db     *gorm.DB
	key    string
	logger *slog.Logger
}

// Open connects to the sqlite file at path, migrating the snapshot table.
// An empty key uses DefaultKey.
func Open(path, key string, logger *slog.Logger) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db, key: key, logger: logger}, nil
}

// Save overwrites the persisted snapshot with the user's current state.
func (s *Store) Save(user *models.User) error {
	data, err := json.Marshal(user.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	row := snapshotRow{Key: s.key, Data: data, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Debug("Saved collection snapshot",
		slog.String("key", s.key),
		slog.Int("bytes", len(data)))
	return nil
}

// Load reconstructs the persisted user. The second return is false when
// nothing has been saved yet.
func (s *Store) Load() (*models.User, bool, error) {
	var row snapshotRow
	err := s.db.First(&row, "key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.UserSnapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return models.UserFromSnapshot(snap), true, nil
}

// Clear deletes the persisted snapshot.
func (s *Store) Clear() error {
	if err := s.db.Delete(&snapshotRow{}, "key = ?", s.key).Error; err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
