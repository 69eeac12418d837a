package model

import "time"

// KVEntry is one row of the durable key-value table backing history records,
// settings and language selection.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"not null"` // JSON document
	UpdatedAt time.Time `gorm:"not null"`
}
