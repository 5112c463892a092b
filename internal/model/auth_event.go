package model

import "time"

const (
	AuthEventRegistered = "user.registered"
	AuthEventVerified   = "user.verified"
	AuthEventLogin      = "user.login"
)

// AuthEvent is an audit row written asynchronously by the audit worker from
// events published on the auth event queue.
type AuthEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Kind      string    `gorm:"size:32;not null" json:"kind"`
	Email     string    `gorm:"size:128" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
