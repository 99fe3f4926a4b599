package models

import "time"

// PageVisit is an analytics row recorded on every page open.
type PageVisit struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Page      string    `gorm:"size:100;index" json:"page"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
