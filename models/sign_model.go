package models

import "time"

// Sign is a road sign card shown in training mode.
type Sign struct {
	ID            string `gorm:"size:36;primary_key" json:"id"`
	NameAr        string `gorm:"size:255;not null" json:"name_ar"`
	NameIt        string `gorm:"size:255;not null" json:"name_it"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
	DescriptionIt string `gorm:"type:text" json:"description_it"`
	Category      string `gorm:"size:100;index" json:"category"`
	Image         string `gorm:"size:512" json:"image"`
	Order         int    `gorm:"column:display_order" json:"order"`

	Archivable
	CreatedAt time.Time `json:"created_at"`
}
