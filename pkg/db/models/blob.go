package models

import "time"

// Blob is one serialized storefront document (menu, settings or a session cart).
type Blob struct {
	Key       string    `gorm:"column:key;primaryKey;type:varchar(255)"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Blob) TableName() string { return "storefront_blobs" }
