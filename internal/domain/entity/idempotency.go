package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed mutating requests so a retried admin action
// (double-clicked status update, replayed create) returns the original result
// instead of hitting the commerce API twice.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"` // The idempotency key from client
	AdminID      string    `gorm:"size:64;not null;index"`        // Admin identity that made the request
	Endpoint     string    `gorm:"size:255;not null"`             // e.g. "PATCH /orders/:id/status"
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"` // Keys expire after 24 hours
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
