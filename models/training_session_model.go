package models

import "time"

type TrainingSession struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	TimeSpent int       `json:"time_spent"`
	CreatedAt time.Time `json:"created_at"`
}
