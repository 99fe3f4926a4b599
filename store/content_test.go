package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestCreateSectionDefaultsToActive(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "إشارات", 1)

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Nil(t, got.DeletedAt)
	assert.NotEmpty(t, got.ID)
}

func TestSoftDeleteSetsStatusAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.SoftDeleteSection(sec.ID))

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, got.Status)
	require.NotNil(t, got.DeletedAt)
	assert.WithinDuration(t, time.Now(), *got.DeletedAt, 5*time.Second)
}

func TestSoftDeleteTwiceIsInvalid(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.SoftDeleteSection(sec.ID))
	assert.ErrorIs(t, s.SoftDeleteSection(sec.ID), ErrInvalidState)
}

func TestSoftDeleteMissingSection(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.SoftDeleteSection("no-such-id"), ErrNotFound)
}

func TestArchiveDoesNotTouchDeletedAt(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.ArchiveSection(sec.ID, true))

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, got.Status)
	assert.Nil(t, got.DeletedAt)
}

func TestArchiveTransitions(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	// Archiving twice, or unarchiving an active record, is a no-op state.
	require.NoError(t, s.ArchiveSection(sec.ID, true))
	assert.ErrorIs(t, s.ArchiveSection(sec.ID, true), ErrInvalidState)
	require.NoError(t, s.ArchiveSection(sec.ID, false))
	assert.ErrorIs(t, s.ArchiveSection(sec.ID, false), ErrInvalidState)

	// A deleted record cannot be archived.
	require.NoError(t, s.SoftDeleteSection(sec.ID))
	assert.ErrorIs(t, s.ArchiveSection(sec.ID, true), ErrInvalidState)
}

func TestArchivedRecordCanBeDeleted(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.ArchiveSection(sec.ID, true))
	require.NoError(t, s.SoftDeleteSection(sec.ID))

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, got.Status)
	assert.NotNil(t, got.DeletedAt)
}

func TestRestoreFromDeletedClearsTimestamp(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.SoftDeleteSection(sec.ID))
	require.NoError(t, s.RestoreSection(sec.ID))

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Nil(t, got.DeletedAt)
}

func TestRestoreFromArchived(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.ArchiveSection(sec.ID, true))
	require.NoError(t, s.RestoreSection(sec.ID))

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestRestoreActiveIsInvalid(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)
	assert.ErrorIs(t, s.RestoreSection(sec.ID), ErrInvalidState)
}

func TestListSectionsFiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	active := seedSection(t, s, "أ", 2)
	archived := seedSection(t, s, "ب", 1)
	deleted := seedSection(t, s, "ج", 3)
	require.NoError(t, s.ArchiveSection(archived.ID, true))
	require.NoError(t, s.SoftDeleteSection(deleted.ID))

	got, err := s.ListSections(models.StatusActive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, active.ID, got[0].ID)

	got, err = s.ListSections(models.StatusArchived)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, archived.ID, got[0].ID)

	got, err = s.ListSections(models.StatusDeleted)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, deleted.ID, got[0].ID)
}

func TestListSectionsTreatsMissingStatusAsActive(t *testing.T) {
	s := newTestStore(t)
	// Imported record without a status.
	require.NoError(t, s.DB().Create(&models.Section{
		ID: "imported", NameAr: "بدون حالة", NameIt: "x",
	}).Error)
	require.NoError(t, s.DB().Model(&models.Section{}).
		Where("id = ?", "imported").Update("status", "").Error)

	got, err := s.ListSections(models.StatusActive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "imported", got[0].ID)
}

func TestListSectionsOrdersByDisplayOrder(t *testing.T) {
	s := newTestStore(t)
	second := seedSection(t, s, "ثاني", 2)
	first := seedSection(t, s, "أول", 1)

	got, err := s.ListSections(models.StatusActive)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestPurgeRemovesOnlyExpiredRecords(t *testing.T) {
	s := newTestStore(t)
	old := seedSection(t, s, "قديم", 1)
	fresh := seedSection(t, s, "جديد", 2)
	require.NoError(t, s.SoftDeleteSection(old.ID))
	require.NoError(t, s.SoftDeleteSection(fresh.ID))

	// Backdate one deletion past the retention window.
	expired := time.Now().Add(-(models.RetentionDays + 1) * 24 * time.Hour)
	require.NoError(t, s.DB().Model(&models.Section{}).
		Where("id = ?", old.ID).Update("deleted_at", expired).Error)

	purged, err := s.PurgeExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = s.GetSection(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.GetSection(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, got.Status)
}

func TestListingDeletedPurgesExpiredFirst(t *testing.T) {
	s := newTestStore(t)
	old := seedSection(t, s, "قديم", 1)
	require.NoError(t, s.SoftDeleteSection(old.ID))
	expired := time.Now().Add(-(models.RetentionDays + 1) * 24 * time.Hour)
	require.NoError(t, s.DB().Model(&models.Section{}).
		Where("id = ?", old.ID).Update("deleted_at", expired).Error)

	got, err := s.ListSections(models.StatusDeleted)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Gone for good, so not restorable either.
	assert.ErrorIs(t, s.RestoreSection(old.ID), ErrNotFound)
}

func TestPermanentDelete(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)

	require.NoError(t, s.PermanentDeleteSection(sec.ID))
	_, err := s.GetSection(sec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.PermanentDeleteSection(sec.ID), ErrNotFound)
}

func TestSectionDeleteDoesNotCascadeToLessons(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)
	lesson := &models.Lesson{SectionID: sec.ID, TitleAr: "درس", TitleIt: "Lezione"}
	require.NoError(t, s.CreateLesson(lesson))

	require.NoError(t, s.SoftDeleteSection(sec.ID))

	got, err := s.GetLesson(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestLessonLifecycleMatchesSections(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قواعد", 1)
	lesson := &models.Lesson{SectionID: sec.ID, TitleAr: "درس", TitleIt: "Lezione"}
	require.NoError(t, s.CreateLesson(lesson))

	require.NoError(t, s.SoftDeleteLesson(lesson.ID))
	assert.ErrorIs(t, s.SoftDeleteLesson(lesson.ID), ErrInvalidState)
	require.NoError(t, s.RestoreLesson(lesson.ID))

	got, err := s.GetLesson(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Nil(t, got.DeletedAt)
}

func TestListLessonsBySection(t *testing.T) {
	s := newTestStore(t)
	secA := seedSection(t, s, "أ", 1)
	secB := seedSection(t, s, "ب", 2)
	inA := &models.Lesson{SectionID: secA.ID, TitleAr: "درس", TitleIt: "Lezione"}
	require.NoError(t, s.CreateLesson(inA))
	require.NoError(t, s.CreateLesson(&models.Lesson{
		SectionID: secB.ID, TitleAr: "آخر", TitleIt: "Altra",
	}))

	got, err := s.ListLessonsBySection(secA.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inA.ID, got[0].ID)
}

func TestListQuestionsByLessonSkipsArchived(t *testing.T) {
	s := newTestStore(t)
	q1 := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "سؤال", QuestionIt: "Domanda", IsTrue: true,
	}
	q2 := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "سؤال آخر", QuestionIt: "Altra", IsTrue: false,
	}
	require.NoError(t, s.CreateQuestion(q1))
	require.NoError(t, s.CreateQuestion(q2))
	require.NoError(t, s.ArchiveQuestion(q2.ID, true))

	got, err := s.ListQuestionsByLesson("l1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, q1.ID, got[0].ID)
}

func TestListSignsByCategory(t *testing.T) {
	s := newTestStore(t)
	warning := &models.Sign{NameAr: "خطر", NameIt: "Pericolo", Category: "warning"}
	require.NoError(t, s.CreateSign(warning))
	require.NoError(t, s.CreateSign(&models.Sign{
		NameAr: "إلزام", NameIt: "Obbligo", Category: "mandatory",
	}))

	got, err := s.ListSignsByCategory("warning")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, warning.ID, got[0].ID)
}
