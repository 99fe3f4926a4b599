package models

import "time"

// SchemaMeta holds the structural version of the database so upgrades
// stay additive: migration runs only when the stored version is behind.
type SchemaMeta struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Version   int       `gorm:"not null" json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
