package models

import "time"

// UserMistake aggregates repeated wrong answers to the same question.
// Count grows each time the user gets the question wrong again; the
// weak-points training mode draws from these rows.
type UserMistake struct {
	ID            string    `gorm:"size:36;primary_key" json:"id"`
	UserID        string    `gorm:"size:36;not null;index" json:"user_id"`
	QuestionID    string    `gorm:"size:36;not null" json:"question_id"`
	QuestionAr    string    `gorm:"type:text" json:"question_ar"`
	QuestionIt    string    `gorm:"type:text" json:"question_it"`
	CorrectAnswer bool      `json:"correct_answer"`
	UserAnswer    bool      `json:"user_answer"`
	Count         int       `gorm:"default:1" json:"count"`
	LastMistakeAt time.Time `json:"last_mistake_at"`
}
