package models

import "time"

type Lesson struct {
	ID        string `gorm:"size:36;primary_key" json:"id"`
	SectionID string `gorm:"size:36;not null;index" json:"section_id"`
	TitleAr   string `gorm:"size:255;not null" json:"title_ar"`
	TitleIt   string `gorm:"size:255;not null" json:"title_it"`
	ContentAr string `gorm:"type:text" json:"content_ar"`
	ContentIt string `gorm:"type:text" json:"content_it"`
	Image     string `gorm:"size:512" json:"image"`
	Order     int    `gorm:"column:display_order" json:"order"`

	Archivable
	CreatedAt time.Time `json:"created_at"`
}
