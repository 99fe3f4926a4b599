package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// Glossary records have no soft-delete lifecycle: deletes here are
// immediate and permanent.

func (s *Store) CreateDictionarySection(sec *models.DictionarySection) error {
	if sec.ID == "" {
		sec.ID = utils.GenerateID()
	}
	return s.db.Create(sec).Error
}

func (s *Store) UpdateDictionarySection(sec *models.DictionarySection) error {
	return s.db.Save(sec).Error
}

func (s *Store) ListDictionarySections() ([]models.DictionarySection, error) {
	var secs []models.DictionarySection
	err := s.db.Order("display_order asc").Find(&secs).Error
	return secs, err
}

func (s *Store) DeleteDictionarySection(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.DictionarySection{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateDictionaryEntry(e *models.DictionaryEntry) error {
	if e.ID == "" {
		e.ID = utils.GenerateID()
	}
	return s.db.Create(e).Error
}

func (s *Store) GetDictionaryEntry(id string) (*models.DictionaryEntry, error) {
	var e models.DictionaryEntry
	err := s.db.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) UpdateDictionaryEntry(e *models.DictionaryEntry) error {
	return s.db.Save(e).Error
}

func (s *Store) ListDictionaryEntries(sectionID string) ([]models.DictionaryEntry, error) {
	var entries []models.DictionaryEntry
	tx := s.db.Order("display_order asc")
	if sectionID != "" {
		tx = tx.Where("section_id = ?", sectionID)
	}
	err := tx.Find(&entries).Error
	return entries, err
}

func (s *Store) DeleteDictionaryEntry(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.DictionaryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
