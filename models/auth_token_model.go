package models

import "time"

// AuthToken is a persisted session. The token value itself is the
// primary key, not a generated id.
type AuthToken struct {
	Token        string    `gorm:"size:64;primary_key" json:"token"`
	RefreshToken string    `gorm:"size:64" json:"refresh_token"`
	UserID       string    `gorm:"size:36;not null;index" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (t AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
