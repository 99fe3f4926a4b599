package models

import "time"

type QuizAnswer struct {
	QuestionID string `json:"question_id"`
	UserAnswer bool   `json:"user_answer"`
	Correct    bool   `json:"correct"`
}

type QuizResult struct {
	ID             string       `gorm:"size:36;primary_key" json:"id"`
	UserID         string       `gorm:"size:36;not null;index" json:"user_id"`
	TopicID        string       `gorm:"size:36" json:"topic_id"`
	LessonID       string       `gorm:"size:36" json:"lesson_id"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	CorrectAnswers int          `json:"correct_answers"`
	WrongAnswers   int          `json:"wrong_answers"`
	TimeSpent      int          `json:"time_spent"`
	Answers        []QuizAnswer `gorm:"serializer:json" json:"answers"`
	CreatedAt      time.Time    `json:"created_at"`
}
