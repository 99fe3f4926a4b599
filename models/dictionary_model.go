package models

import "time"

// Dictionary records have no soft-delete lifecycle; deletion is permanent.

type DictionarySection struct {
	ID        string    `gorm:"size:36;primary_key" json:"id"`
	NameAr    string    `gorm:"size:255;not null" json:"name_ar"`
	NameIt    string    `gorm:"size:255;not null" json:"name_it"`
	Icon      string    `gorm:"size:100" json:"icon"`
	Order     int       `gorm:"column:display_order" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type DictionaryEntry struct {
	ID           string    `gorm:"size:36;primary_key" json:"id"`
	SectionID    string    `gorm:"size:36;not null;index" json:"section_id"`
	TermIt       string    `gorm:"size:255;not null" json:"term_it"`
	TermAr       string    `gorm:"size:255;not null" json:"term_ar"`
	DefinitionIt string    `gorm:"type:text" json:"definition_it"`
	DefinitionAr string    `gorm:"type:text" json:"definition_ar"`
	Order        int       `gorm:"column:display_order" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}
