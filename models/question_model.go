package models

import "time"

// Question is a true/false exam question, bilingual as everywhere else.
type Question struct {
	ID            string `gorm:"size:36;primary_key" json:"id"`
	LessonID      string `gorm:"size:36;not null;index" json:"lesson_id"`
	SectionID     string `gorm:"size:36;not null;index" json:"section_id"`
	QuestionAr    string `gorm:"type:text;not null" json:"question_ar"`
	QuestionIt    string `gorm:"type:text;not null" json:"question_it"`
	IsTrue        bool   `gorm:"not null" json:"is_true"`
	ExplanationAr string `gorm:"type:text" json:"explanation_ar"`
	ExplanationIt string `gorm:"type:text" json:"explanation_it"`
	Difficulty    string `gorm:"size:10;default:'medium'" json:"difficulty"`
	Image         string `gorm:"size:512" json:"image"`
	Order         int    `gorm:"column:display_order" json:"order"`

	Archivable
	CreatedAt time.Time `json:"created_at"`
}
