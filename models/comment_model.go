package models

import "time"

// Comment belongs to a post. A non-nil ParentID marks it as a reply to
// another comment. Old exports encoded the parent as a "REPLY_TO:<id>:"
// prefix inside Content; those rows are normalized to ParentID during
// migration (see store.MigrateLegacyReplies).
type Comment struct {
	ID         string   `gorm:"size:36;primary_key" json:"id"`
	PostID     string   `gorm:"size:36;not null;index" json:"post_id"`
	UserID     string   `gorm:"size:36;not null" json:"user_id"`
	UserName   string   `gorm:"size:255" json:"user_name"`
	UserAvatar string   `gorm:"size:512" json:"user_avatar"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	ParentID   *string  `gorm:"size:36" json:"parent_id,omitempty"`
	Mentions   []string `gorm:"serializer:json" json:"mentions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
