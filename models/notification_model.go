package models

import "time"

// Notification is a system message shown to a single user.
type Notification struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"size:10;default:'info'" json:"type"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
