package models

import "time"

const (
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"
)

// RetentionDays is how long a soft-deleted record stays restorable
// before it becomes eligible for permanent purge.
const RetentionDays = 30

// Archivable is embedded by every content entity that supports the
// soft-delete / archive lifecycle. DeletedAt is set exactly when
// Status is "deleted".
type Archivable struct {
	Status    string     `gorm:"size:20;not null;default:'active';index" json:"status"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// LifecycleState returns the current status and deletion timestamp.
// Promoted onto every embedding model so the store can run the shared
// lifecycle transitions over any content type.
func (a Archivable) LifecycleState() (string, *time.Time) {
	return a.Status, a.DeletedAt
}

// PurgeEligible reports whether the record has been soft-deleted for
// longer than the retention window.
func (a Archivable) PurgeEligible(now time.Time) bool {
	if a.Status != StatusDeleted || a.DeletedAt == nil {
		return false
	}
	return now.Sub(*a.DeletedAt) > RetentionDays*24*time.Hour
}
