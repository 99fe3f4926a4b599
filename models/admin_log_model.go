package models

import "time"

// AdminLog is an audit row: which admin did what.
type AdminLog struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	AdminID   string    `gorm:"size:36;not null" json:"admin_id"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
