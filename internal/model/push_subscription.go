package model

import "time"

// PushSubscription holds a browser push subscription. Every subscriber is
// notified when a new schedule has been generated.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
