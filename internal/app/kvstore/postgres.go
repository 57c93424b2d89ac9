package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Слот в таблице kv_slots
type KVSlot struct {
	Slot  string `gorm:"primaryKey;type:varchar(50)"`
	Value []byte `gorm:"type:bytea;not null"`
}

func (KVSlot) TableName() string {
	return "kv_slots"
}

// PostgresStore хранит слоты в одной таблице Postgres
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&KVSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slot KVSlot
	err := p.db.WithContext(ctx).First(&slot, "slot = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return slot.Value, nil
}

func (p *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	slot := KVSlot{Slot: key, Value: value}
	err := p.db.WithContext(ctx).Save(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}
