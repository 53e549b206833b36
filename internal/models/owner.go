package models

import "time"

// Owner is the single device owner. At most one row exists; the PIN hash
// gates the local HTTP API.
type Owner struct {
	ID        uint   `gorm:"primaryKey"`
	PINHash   string `gorm:"column:pin_hash;not null"`
	CreatedAt time.Time
}
