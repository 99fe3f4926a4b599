package store

import (
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

func (s *Store) CreateReport(r *models.Report) error {
	if r.ID == "" {
		r.ID = utils.GenerateID()
	}
	if r.Status == "" {
		r.Status = models.ReportPending
	}
	return s.db.Create(r).Error
}

func (s *Store) ListReports(status string) ([]models.Report, error) {
	var reports []models.Report
	tx := s.db.Order("created_at desc")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Find(&reports).Error
	return reports, err
}

func (s *Store) SetReportStatus(id, status string) error {
	res := s.db.Model(&models.Report{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
