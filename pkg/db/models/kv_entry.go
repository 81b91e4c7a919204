package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one persisted storage key; the value is the JSON document stored under it.
type KVEntry struct {
	StorageKey string         `gorm:"column:storage_key;type:varchar(255);primaryKey"`
	Value      datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
