package models

import "time"

const (
	NotifLike    = "like"
	NotifComment = "comment"
	NotifReply   = "reply"
	NotifMention = "mention"
	NotifFollow  = "follow"
)

// CommunityNotification is a directed social event: someone liked,
// commented on, replied to, mentioned or followed someone else.
type CommunityNotification struct {
	ID             string    `gorm:"size:36;primary_key" json:"id"`
	ToUserID       string    `gorm:"size:36;not null;index" json:"to_user_id"`
	FromUserID     string    `gorm:"size:36;not null" json:"from_user_id"`
	FromUserName   string    `gorm:"size:255" json:"from_user_name"`
	FromUserAvatar string    `gorm:"size:512" json:"from_user_avatar"`
	Type           string    `gorm:"size:10;not null" json:"type"`
	PostID         *string   `gorm:"size:36" json:"post_id,omitempty"`
	CommentID      *string   `gorm:"size:36" json:"comment_id,omitempty"`
	Read           bool      `gorm:"default:false" json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}
