package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

// archived is satisfied by every model embedding models.Archivable.
type archived interface {
	LifecycleState() (status string, deletedAt *time.Time)
}

// Lifecycle shared by Section, Lesson, Question and Sign:
//
//	(none) --create--> active
//	active --delete--> deleted --restore--> active
//	active --archive--> archived --unarchive--> active
//	archived --delete--> deleted
//	deleted --purge (30d timeout or explicit)--> removed
//
// Records imported without a status are treated as active.

func getContent[T archived](db *gorm.DB, id string) (*T, error) {
	var rec T
	err := db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func listContentByStatus[T archived](db *gorm.DB, status string) ([]T, error) {
	var recs []T
	tx := db.Order("display_order asc, created_at asc")
	if status == models.StatusActive {
		tx = tx.Where("status = ? OR status = '' OR status IS NULL", models.StatusActive)
	} else {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Find(&recs).Error
	return recs, err
}

func softDeleteContent[T archived](db *gorm.DB, id string) error {
	rec, err := getContent[T](db, id)
	if err != nil {
		return err
	}
	status, _ := (*rec).LifecycleState()
	if status == models.StatusDeleted {
		return ErrInvalidState
	}
	now := time.Now()
	return db.Model(new(T)).Where("id = ?", id).Updates(map[string]any{
		"status":     models.StatusDeleted,
		"deleted_at": &now,
	}).Error
}

func archiveContent[T archived](db *gorm.DB, id string, archive bool) error {
	rec, err := getContent[T](db, id)
	if err != nil {
		return err
	}
	status, _ := (*rec).LifecycleState()
	if status == models.StatusDeleted {
		return ErrInvalidState
	}
	target := models.StatusArchived
	if !archive {
		target = models.StatusActive
	}
	if normStatus(status) == target {
		return ErrInvalidState
	}
	// Archiving never touches deleted_at.
	return db.Model(new(T)).Where("id = ?", id).Update("status", target).Error
}

// restoreContent brings a deleted or archived record back to active and
// clears its deletion timestamp.
func restoreContent[T archived](db *gorm.DB, id string) error {
	rec, err := getContent[T](db, id)
	if err != nil {
		return err
	}
	status, _ := (*rec).LifecycleState()
	if normStatus(status) == models.StatusActive {
		return ErrInvalidState
	}
	return db.Model(new(T)).Where("id = ?", id).Updates(map[string]any{
		"status":     models.StatusActive,
		"deleted_at": nil,
	}).Error
}

func permanentDeleteContent[T archived](db *gorm.DB, id string) error {
	res := db.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// purgeExpiredContent removes records soft-deleted longer than the
// retention window ago. Records inside the window are untouched.
func purgeExpiredContent[T archived](db *gorm.DB, now time.Time) (int64, error) {
	cutoff := now.Add(-models.RetentionDays * 24 * time.Hour)
	res := db.Where("status = ? AND deleted_at IS NOT NULL AND deleted_at < ?",
		models.StatusDeleted, cutoff).Delete(new(T))
	return res.RowsAffected, res.Error
}

func normStatus(status string) string {
	if status == "" {
		return models.StatusActive
	}
	return status
}

// --- Sections ---

func (s *Store) CreateSection(sec *models.Section) error {
	if sec.ID == "" {
		sec.ID = utils.GenerateID()
	}
	if sec.Status == "" {
		sec.Status = models.StatusActive
	}
	return s.db.Create(sec).Error
}

func (s *Store) GetSection(id string) (*models.Section, error) {
	return getContent[models.Section](s.db, id)
}

func (s *Store) UpdateSection(sec *models.Section) error {
	return s.db.Save(sec).Error
}

// ListSections returns sections in the given lifecycle state. Listing
// the deleted view first purges anything past the retention window, so
// expired records never show up as restorable.
func (s *Store) ListSections(status string) ([]models.Section, error) {
	if status == models.StatusDeleted {
		if _, err := purgeExpiredContent[models.Section](s.db, time.Now()); err != nil {
			return nil, err
		}
	}
	return listContentByStatus[models.Section](s.db, status)
}

func (s *Store) SoftDeleteSection(id string) error {
	return softDeleteContent[models.Section](s.db, id)
}

func (s *Store) ArchiveSection(id string, archive bool) error {
	return archiveContent[models.Section](s.db, id, archive)
}

func (s *Store) RestoreSection(id string) error {
	return restoreContent[models.Section](s.db, id)
}

func (s *Store) PermanentDeleteSection(id string) error {
	return permanentDeleteContent[models.Section](s.db, id)
}

// --- Lessons ---

func (s *Store) CreateLesson(l *models.Lesson) error {
	if l.ID == "" {
		l.ID = utils.GenerateID()
	}
	if l.Status == "" {
		l.Status = models.StatusActive
	}
	return s.db.Create(l).Error
}

func (s *Store) GetLesson(id string) (*models.Lesson, error) {
	return getContent[models.Lesson](s.db, id)
}

func (s *Store) UpdateLesson(l *models.Lesson) error {
	return s.db.Save(l).Error
}

func (s *Store) ListLessons(status string) ([]models.Lesson, error) {
	if status == models.StatusDeleted {
		if _, err := purgeExpiredContent[models.Lesson](s.db, time.Now()); err != nil {
			return nil, err
		}
	}
	return listContentByStatus[models.Lesson](s.db, status)
}

// ListLessonsBySection returns the active lessons of one section.
// Deleting a section does not cascade, so callers listing lessons of a
// soft-deleted section still get them back.
func (s *Store) ListLessonsBySection(sectionID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.db.
		Where("section_id = ? AND (status = ? OR status = '' OR status IS NULL)", sectionID, models.StatusActive).
		Order("display_order asc").
		Find(&lessons).Error
	return lessons, err
}

func (s *Store) SoftDeleteLesson(id string) error {
	return softDeleteContent[models.Lesson](s.db, id)
}

func (s *Store) ArchiveLesson(id string, archive bool) error {
	return archiveContent[models.Lesson](s.db, id, archive)
}

func (s *Store) RestoreLesson(id string) error {
	return restoreContent[models.Lesson](s.db, id)
}

func (s *Store) PermanentDeleteLesson(id string) error {
	return permanentDeleteContent[models.Lesson](s.db, id)
}

// --- Questions ---

func (s *Store) CreateQuestion(q *models.Question) error {
	if q.ID == "" {
		q.ID = utils.GenerateID()
	}
	if q.Status == "" {
		q.Status = models.StatusActive
	}
	return s.db.Create(q).Error
}

func (s *Store) GetQuestion(id string) (*models.Question, error) {
	return getContent[models.Question](s.db, id)
}

func (s *Store) UpdateQuestion(q *models.Question) error {
	return s.db.Save(q).Error
}

func (s *Store) ListQuestions(status string) ([]models.Question, error) {
	if status == models.StatusDeleted {
		if _, err := purgeExpiredContent[models.Question](s.db, time.Now()); err != nil {
			return nil, err
		}
	}
	return listContentByStatus[models.Question](s.db, status)
}

func (s *Store) ListQuestionsByLesson(lessonID string) ([]models.Question, error) {
	var qs []models.Question
	err := s.db.
		Where("lesson_id = ? AND (status = ? OR status = '' OR status IS NULL)", lessonID, models.StatusActive).
		Order("display_order asc").
		Find(&qs).Error
	return qs, err
}

func (s *Store) ListQuestionsBySection(sectionID string) ([]models.Question, error) {
	var qs []models.Question
	err := s.db.
		Where("section_id = ? AND (status = ? OR status = '' OR status IS NULL)", sectionID, models.StatusActive).
		Order("display_order asc").
		Find(&qs).Error
	return qs, err
}

func (s *Store) SoftDeleteQuestion(id string) error {
	return softDeleteContent[models.Question](s.db, id)
}

func (s *Store) ArchiveQuestion(id string, archive bool) error {
	return archiveContent[models.Question](s.db, id, archive)
}

func (s *Store) RestoreQuestion(id string) error {
	return restoreContent[models.Question](s.db, id)
}

func (s *Store) PermanentDeleteQuestion(id string) error {
	return permanentDeleteContent[models.Question](s.db, id)
}

// --- Signs ---

func (s *Store) CreateSign(sg *models.Sign) error {
	if sg.ID == "" {
		sg.ID = utils.GenerateID()
	}
	if sg.Status == "" {
		sg.Status = models.StatusActive
	}
	return s.db.Create(sg).Error
}

func (s *Store) GetSign(id string) (*models.Sign, error) {
	return getContent[models.Sign](s.db, id)
}

func (s *Store) UpdateSign(sg *models.Sign) error {
	return s.db.Save(sg).Error
}

func (s *Store) ListSigns(status string) ([]models.Sign, error) {
	if status == models.StatusDeleted {
		if _, err := purgeExpiredContent[models.Sign](s.db, time.Now()); err != nil {
			return nil, err
		}
	}
	return listContentByStatus[models.Sign](s.db, status)
}

func (s *Store) ListSignsByCategory(category string) ([]models.Sign, error) {
	var signs []models.Sign
	err := s.db.
		Where("category = ? AND (status = ? OR status = '' OR status IS NULL)", category, models.StatusActive).
		Order("display_order asc").
		Find(&signs).Error
	return signs, err
}

func (s *Store) SoftDeleteSign(id string) error {
	return softDeleteContent[models.Sign](s.db, id)
}

func (s *Store) ArchiveSign(id string, archive bool) error {
	return archiveContent[models.Sign](s.db, id, archive)
}

func (s *Store) RestoreSign(id string) error {
	return restoreContent[models.Sign](s.db, id)
}

func (s *Store) PermanentDeleteSign(id string) error {
	return permanentDeleteContent[models.Sign](s.db, id)
}

// PurgeExpired sweeps every content collection and removes records past
// the retention window. Returns the total number purged.
func (s *Store) PurgeExpired() (int64, error) {
	now := time.Now()
	var total int64

	n, err := purgeExpiredContent[models.Section](s.db, now)
	if err != nil {
		return total, err
	}
	total += n

	n, err = purgeExpiredContent[models.Lesson](s.db, now)
	if err != nil {
		return total, err
	}
	total += n

	n, err = purgeExpiredContent[models.Question](s.db, now)
	if err != nil {
		return total, err
	}
	total += n

	n, err = purgeExpiredContent[models.Sign](s.db, now)
	if err != nil {
		return total, err
	}
	total += n

	return total, nil
}
