package store

import (
	"time"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

func (s *Store) RecordPageVisit(userID, page string) error {
	visit := models.PageVisit{
		ID:     utils.GenerateID(),
		UserID: userID,
		Page:   page,
	}
	return s.db.Create(&visit).Error
}

func (s *Store) ListPageVisitsByUser(userID string) ([]models.PageVisit, error) {
	var visits []models.PageVisit
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&visits).Error
	return visits, err
}

// CountPageVisits aggregates visits per page over a time range, for the
// admin dashboard.
func (s *Store) CountPageVisits(page string, since time.Time) (int64, error) {
	var count int64
	tx := s.db.Model(&models.PageVisit{}).Where("created_at >= ?", since)
	if page != "" {
		tx = tx.Where("page = ?", page)
	}
	err := tx.Count(&count).Error
	return count, err
}
