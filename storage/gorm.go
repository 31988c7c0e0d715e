package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one row of the storage_slots table.
type Slot struct {
	Key       string         `gorm:"column:slot_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Slot) TableName() string {
	return "storage_slots"
}

// GormStore keeps slots in a sqlite or postgres table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the slot table and returns a store over db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, errors.Wrap(err, "migrate storage_slots")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var slot Slot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "get slot %s", key)
	}
	return string(slot.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	slot := Slot{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	return errors.Wrapf(err, "set slot %s", key)
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&Slot{}).Error
	return errors.Wrapf(err, "delete slot %s", key)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
