package kvstore

import (
	"context"
	"errors"

	"github.com/angelmondragon/opusclip-demo/pkg/db"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLBackend keeps one kv_entries row per key (sqlite or postgres through gorm).
type SQLBackend struct {
	client *db.Client
}

func NewSQLBackend(client *db.Client) *SQLBackend {
	return &SQLBackend{client: client}
}

func (s *SQLBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.client.DB().WithContext(ctx).
		Where("storage_key = ?", key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (s *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{StorageKey: key, Value: datatypes.JSON(value)}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *SQLBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Where("storage_key IN ?", keys).Delete(&models.KVEntry{}).Error
	})
}

func (s *SQLBackend) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.client.DB().WithContext(ctx).
		Model(&models.KVEntry{}).
		Order("storage_key").
		Pluck("storage_key", &keys).Error
	return keys, err
}

func (s *SQLBackend) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SQLBackend) Close() error {
	return s.client.Close()
}
