package models

import "time"

type Section struct {
	ID            string `gorm:"size:36;primary_key" json:"id"`
	NameAr        string `gorm:"size:255;not null" json:"name_ar"`
	NameIt        string `gorm:"size:255;not null" json:"name_it"`
	DescriptionAr string `gorm:"type:text" json:"description_ar"`
	DescriptionIt string `gorm:"type:text" json:"description_it"`
	Image         string `gorm:"size:512" json:"image"`
	Icon          string `gorm:"size:100" json:"icon"`
	Color         string `gorm:"size:30" json:"color"`
	Order         int    `gorm:"column:display_order;index" json:"order"`

	Archivable
	CreatedAt time.Time `json:"created_at"`
}
