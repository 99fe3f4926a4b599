package models

import "time"

// Like joins one user to one post. At most one row may exist per
// (post, user) pair.
type Like struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	PostID    string    `gorm:"size:36;not null;index;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"size:36;not null;index;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
