package models

import "time"

const (
	PostTypeText = "post"
	PostTypeQuiz = "quiz"
)

// QuizStats is the running vote tally of a quiz post.
type QuizStats struct {
	TrueCount  int `gorm:"default:0" json:"true_count"`
	FalseCount int `gorm:"default:0" json:"false_count"`
}

// Post carries an author snapshot (name/avatar at creation time) so the
// feed renders without joining users. LikesCount and CommentsCount are
// denormalized; the store keeps them in step with the like/comment rows.
type Post struct {
	ID         string `gorm:"size:36;primary_key" json:"id"`
	UserID     string `gorm:"size:36;not null;index" json:"user_id"`
	UserName   string `gorm:"size:255" json:"user_name"`
	UserAvatar string `gorm:"size:512" json:"user_avatar"`

	Content string `gorm:"type:text" json:"content"`
	Image   string `gorm:"size:512" json:"image"`
	Type    string `gorm:"size:10;not null;default:'post'" json:"type"`

	QuizQuestion string    `gorm:"type:text" json:"quiz_question"`
	QuizAnswer   bool      `json:"quiz_answer"`
	QuizStats    QuizStats `gorm:"embedded;embeddedPrefix:quiz_" json:"quiz_stats"`

	Pinned        bool `gorm:"default:false" json:"pinned"`
	LikesCount    int  `gorm:"default:0" json:"likes_count"`
	CommentsCount int  `gorm:"default:0" json:"comments_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
