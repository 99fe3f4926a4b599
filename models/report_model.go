package models

import "time"

const (
	ReportPending   = "pending"
	ReportReviewed  = "reviewed"
	ReportDismissed = "dismissed"
)

// Report is a moderation flag raised by a user against a post, a
// comment or another user.
type Report struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	TargetID  string    `gorm:"size:36;not null" json:"target_id"`
	UserID    string    `gorm:"size:36;not null" json:"user_id"`
	Reason    string    `gorm:"type:text" json:"reason"`
	Status    string    `gorm:"size:10;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
