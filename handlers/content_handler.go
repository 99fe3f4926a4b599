package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/middleware"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
)

// ContentHandler owns the admin CRUD and lifecycle of the learning
// content: sections, lessons, questions, road signs and the glossary.
type ContentHandler struct {
	store *store.Store
}

func NewContentHandler(s *store.Store) *ContentHandler {
	return &ContentHandler{store: s}
}

func statusQuery(c *fiber.Ctx) string {
	status := c.Query("status", models.StatusActive)
	switch status {
	case models.StatusActive, models.StatusArchived, models.StatusDeleted:
		return status
	}
	return models.StatusActive
}

func lifecycleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.Is(err, store.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Record status does not allow this operation"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
}

// logAction records the audit trail; a failed audit write never fails
// the admin operation itself.
func (h *ContentHandler) logAction(c *fiber.Ctx, action, details string) {
	if err := h.store.AppendAdminLog(middleware.UserID(c), action, details); err != nil {
		log.Printf("Failed to write admin log (%s): %v", action, err)
	}
}

// --- Sections ---

type SectionRequest struct {
	NameAr        string `json:"name_ar" validate:"required"`
	NameIt        string `json:"name_it" validate:"required"`
	DescriptionAr string `json:"description_ar"`
	DescriptionIt string `json:"description_it"`
	Image         string `json:"image"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	Order         int    `json:"order"`
}

func (h *ContentHandler) CreateSection(c *fiber.Ctx) error {
	var req SectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	section := models.Section{
		NameAr: req.NameAr, NameIt: req.NameIt,
		DescriptionAr: req.DescriptionAr, DescriptionIt: req.DescriptionIt,
		Image: req.Image, Icon: req.Icon, Color: req.Color, Order: req.Order,
	}
	if err := h.store.CreateSection(&section); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create section"})
	}
	h.logAction(c, "create_section", section.NameAr)
	return c.Status(fiber.StatusCreated).JSON(section)
}

func (h *ContentHandler) ListSections(c *fiber.Ctx) error {
	sections, err := h.store.ListSections(statusQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sections)
}

func (h *ContentHandler) UpdateSection(c *fiber.Ctx) error {
	section, err := h.store.GetSection(c.Params("sectionId"))
	if err != nil {
		return lifecycleError(c, err)
	}
	var req SectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	section.NameAr, section.NameIt = req.NameAr, req.NameIt
	section.DescriptionAr, section.DescriptionIt = req.DescriptionAr, req.DescriptionIt
	section.Image, section.Icon, section.Color, section.Order = req.Image, req.Icon, req.Color, req.Order
	if err := h.store.UpdateSection(section); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update section"})
	}
	h.logAction(c, "update_section", section.ID)
	return c.JSON(section)
}

func (h *ContentHandler) DeleteSection(c *fiber.Ctx) error {
	id := c.Params("sectionId")
	if err := h.store.SoftDeleteSection(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "delete_section", id)
	return c.JSON(fiber.Map{"message": "Section moved to trash"})
}

func (h *ContentHandler) PermanentDeleteSection(c *fiber.Ctx) error {
	id := c.Params("sectionId")
	if err := h.store.PermanentDeleteSection(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "permanent_delete_section", id)
	return c.JSON(fiber.Map{"message": "Section permanently deleted"})
}

func (h *ContentHandler) ArchiveSection(c *fiber.Ctx) error {
	id := c.Params("sectionId")
	archive := c.Query("archive", "true") != "false"
	if err := h.store.ArchiveSection(id, archive); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "archive_section", id)
	return c.JSON(fiber.Map{"message": "Section archive state updated"})
}

func (h *ContentHandler) RestoreSection(c *fiber.Ctx) error {
	id := c.Params("sectionId")
	if err := h.store.RestoreSection(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "restore_section", id)
	return c.JSON(fiber.Map{"message": "Section restored"})
}

// --- Lessons ---

type LessonRequest struct {
	SectionID string `json:"section_id" validate:"required"`
	TitleAr   string `json:"title_ar" validate:"required"`
	TitleIt   string `json:"title_it" validate:"required"`
	ContentAr string `json:"content_ar"`
	ContentIt string `json:"content_it"`
	Image     string `json:"image"`
	Order     int    `json:"order"`
}

func (h *ContentHandler) CreateLesson(c *fiber.Ctx) error {
	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	lesson := models.Lesson{
		SectionID: req.SectionID,
		TitleAr:   req.TitleAr, TitleIt: req.TitleIt,
		ContentAr: req.ContentAr, ContentIt: req.ContentIt,
		Image: req.Image, Order: req.Order,
	}
	if err := h.store.CreateLesson(&lesson); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}
	h.logAction(c, "create_lesson", lesson.TitleAr)
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func (h *ContentHandler) ListLessons(c *fiber.Ctx) error {
	if sectionID := c.Query("section_id"); sectionID != "" {
		lessons, err := h.store.ListLessonsBySection(sectionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(lessons)
	}
	lessons, err := h.store.ListLessons(statusQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(lessons)
}

func (h *ContentHandler) UpdateLesson(c *fiber.Ctx) error {
	lesson, err := h.store.GetLesson(c.Params("lessonId"))
	if err != nil {
		return lifecycleError(c, err)
	}
	var req LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	lesson.SectionID = req.SectionID
	lesson.TitleAr, lesson.TitleIt = req.TitleAr, req.TitleIt
	lesson.ContentAr, lesson.ContentIt = req.ContentAr, req.ContentIt
	lesson.Image, lesson.Order = req.Image, req.Order
	if err := h.store.UpdateLesson(lesson); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}
	h.logAction(c, "update_lesson", lesson.ID)
	return c.JSON(lesson)
}

func (h *ContentHandler) DeleteLesson(c *fiber.Ctx) error {
	id := c.Params("lessonId")
	if err := h.store.SoftDeleteLesson(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "delete_lesson", id)
	return c.JSON(fiber.Map{"message": "Lesson moved to trash"})
}

func (h *ContentHandler) PermanentDeleteLesson(c *fiber.Ctx) error {
	id := c.Params("lessonId")
	if err := h.store.PermanentDeleteLesson(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "permanent_delete_lesson", id)
	return c.JSON(fiber.Map{"message": "Lesson permanently deleted"})
}

func (h *ContentHandler) ArchiveLesson(c *fiber.Ctx) error {
	id := c.Params("lessonId")
	archive := c.Query("archive", "true") != "false"
	if err := h.store.ArchiveLesson(id, archive); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "archive_lesson", id)
	return c.JSON(fiber.Map{"message": "Lesson archive state updated"})
}

func (h *ContentHandler) RestoreLesson(c *fiber.Ctx) error {
	id := c.Params("lessonId")
	if err := h.store.RestoreLesson(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "restore_lesson", id)
	return c.JSON(fiber.Map{"message": "Lesson restored"})
}

// --- Questions ---

type QuestionRequest struct {
	LessonID      string `json:"lesson_id" validate:"required"`
	SectionID     string `json:"section_id" validate:"required"`
	QuestionAr    string `json:"question_ar" validate:"required"`
	QuestionIt    string `json:"question_it" validate:"required"`
	IsTrue        bool   `json:"is_true"`
	ExplanationAr string `json:"explanation_ar"`
	ExplanationIt string `json:"explanation_it"`
	Difficulty    string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Image         string `json:"image"`
	Order         int    `json:"order"`
}

func (h *ContentHandler) CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	question := models.Question{
		LessonID: req.LessonID, SectionID: req.SectionID,
		QuestionAr: req.QuestionAr, QuestionIt: req.QuestionIt,
		IsTrue:        req.IsTrue,
		ExplanationAr: req.ExplanationAr, ExplanationIt: req.ExplanationIt,
		Difficulty: req.Difficulty, Image: req.Image, Order: req.Order,
	}
	if err := h.store.CreateQuestion(&question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}
	h.logAction(c, "create_question", question.ID)
	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *ContentHandler) ListQuestions(c *fiber.Ctx) error {
	if lessonID := c.Query("lesson_id"); lessonID != "" {
		qs, err := h.store.ListQuestionsByLesson(lessonID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(qs)
	}
	if sectionID := c.Query("section_id"); sectionID != "" {
		qs, err := h.store.ListQuestionsBySection(sectionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(qs)
	}
	qs, err := h.store.ListQuestions(statusQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(qs)
}

func (h *ContentHandler) UpdateQuestion(c *fiber.Ctx) error {
	question, err := h.store.GetQuestion(c.Params("questionId"))
	if err != nil {
		return lifecycleError(c, err)
	}
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	question.LessonID, question.SectionID = req.LessonID, req.SectionID
	question.QuestionAr, question.QuestionIt = req.QuestionAr, req.QuestionIt
	question.IsTrue = req.IsTrue
	question.ExplanationAr, question.ExplanationIt = req.ExplanationAr, req.ExplanationIt
	question.Difficulty, question.Image, question.Order = req.Difficulty, req.Image, req.Order
	if err := h.store.UpdateQuestion(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}
	h.logAction(c, "update_question", question.ID)
	return c.JSON(question)
}

func (h *ContentHandler) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("questionId")
	if err := h.store.SoftDeleteQuestion(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "delete_question", id)
	return c.JSON(fiber.Map{"message": "Question moved to trash"})
}

func (h *ContentHandler) PermanentDeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("questionId")
	if err := h.store.PermanentDeleteQuestion(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "permanent_delete_question", id)
	return c.JSON(fiber.Map{"message": "Question permanently deleted"})
}

func (h *ContentHandler) ArchiveQuestion(c *fiber.Ctx) error {
	id := c.Params("questionId")
	archive := c.Query("archive", "true") != "false"
	if err := h.store.ArchiveQuestion(id, archive); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "archive_question", id)
	return c.JSON(fiber.Map{"message": "Question archive state updated"})
}

func (h *ContentHandler) RestoreQuestion(c *fiber.Ctx) error {
	id := c.Params("questionId")
	if err := h.store.RestoreQuestion(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "restore_question", id)
	return c.JSON(fiber.Map{"message": "Question restored"})
}

// --- Signs ---

type SignRequest struct {
	NameAr        string `json:"name_ar" validate:"required"`
	NameIt        string `json:"name_it" validate:"required"`
	DescriptionAr string `json:"description_ar"`
	DescriptionIt string `json:"description_it"`
	Category      string `json:"category" validate:"required"`
	Image         string `json:"image"`
	Order         int    `json:"order"`
}

func (h *ContentHandler) CreateSign(c *fiber.Ctx) error {
	var req SignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sign := models.Sign{
		NameAr: req.NameAr, NameIt: req.NameIt,
		DescriptionAr: req.DescriptionAr, DescriptionIt: req.DescriptionIt,
		Category: req.Category, Image: req.Image, Order: req.Order,
	}
	if err := h.store.CreateSign(&sign); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create sign"})
	}
	h.logAction(c, "create_sign", sign.NameAr)
	return c.Status(fiber.StatusCreated).JSON(sign)
}

func (h *ContentHandler) ListSigns(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		signs, err := h.store.ListSignsByCategory(category)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(signs)
	}
	signs, err := h.store.ListSigns(statusQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(signs)
}

func (h *ContentHandler) UpdateSign(c *fiber.Ctx) error {
	sign, err := h.store.GetSign(c.Params("signId"))
	if err != nil {
		return lifecycleError(c, err)
	}
	var req SignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sign.NameAr, sign.NameIt = req.NameAr, req.NameIt
	sign.DescriptionAr, sign.DescriptionIt = req.DescriptionAr, req.DescriptionIt
	sign.Category, sign.Image, sign.Order = req.Category, req.Image, req.Order
	if err := h.store.UpdateSign(sign); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update sign"})
	}
	h.logAction(c, "update_sign", sign.ID)
	return c.JSON(sign)
}

func (h *ContentHandler) DeleteSign(c *fiber.Ctx) error {
	id := c.Params("signId")
	if err := h.store.SoftDeleteSign(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "delete_sign", id)
	return c.JSON(fiber.Map{"message": "Sign moved to trash"})
}

func (h *ContentHandler) PermanentDeleteSign(c *fiber.Ctx) error {
	id := c.Params("signId")
	if err := h.store.PermanentDeleteSign(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "permanent_delete_sign", id)
	return c.JSON(fiber.Map{"message": "Sign permanently deleted"})
}

func (h *ContentHandler) ArchiveSign(c *fiber.Ctx) error {
	id := c.Params("signId")
	archive := c.Query("archive", "true") != "false"
	if err := h.store.ArchiveSign(id, archive); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "archive_sign", id)
	return c.JSON(fiber.Map{"message": "Sign archive state updated"})
}

func (h *ContentHandler) RestoreSign(c *fiber.Ctx) error {
	id := c.Params("signId")
	if err := h.store.RestoreSign(id); err != nil {
		return lifecycleError(c, err)
	}
	h.logAction(c, "restore_sign", id)
	return c.JSON(fiber.Map{"message": "Sign restored"})
}

// --- Dictionary ---

type DictionarySectionRequest struct {
	NameAr string `json:"name_ar" validate:"required"`
	NameIt string `json:"name_it" validate:"required"`
	Icon   string `json:"icon"`
	Order  int    `json:"order"`
}

func (h *ContentHandler) CreateDictionarySection(c *fiber.Ctx) error {
	var req DictionarySectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	section := models.DictionarySection{
		NameAr: req.NameAr, NameIt: req.NameIt, Icon: req.Icon, Order: req.Order,
	}
	if err := h.store.CreateDictionarySection(&section); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create dictionary section"})
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

func (h *ContentHandler) ListDictionarySections(c *fiber.Ctx) error {
	sections, err := h.store.ListDictionarySections()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sections)
}

func (h *ContentHandler) DeleteDictionarySection(c *fiber.Ctx) error {
	if err := h.store.DeleteDictionarySection(c.Params("sectionId")); err != nil {
		return lifecycleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dictionary section deleted"})
}

type DictionaryEntryRequest struct {
	SectionID    string `json:"section_id" validate:"required"`
	TermIt       string `json:"term_it" validate:"required"`
	TermAr       string `json:"term_ar" validate:"required"`
	DefinitionIt string `json:"definition_it"`
	DefinitionAr string `json:"definition_ar"`
	Order        int    `json:"order"`
}

func (h *ContentHandler) CreateDictionaryEntry(c *fiber.Ctx) error {
	var req DictionaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	entry := models.DictionaryEntry{
		SectionID: req.SectionID,
		TermIt:    req.TermIt, TermAr: req.TermAr,
		DefinitionIt: req.DefinitionIt, DefinitionAr: req.DefinitionAr,
		Order: req.Order,
	}
	if err := h.store.CreateDictionaryEntry(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create dictionary entry"})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *ContentHandler) ListDictionaryEntries(c *fiber.Ctx) error {
	entries, err := h.store.ListDictionaryEntries(c.Query("section_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(entries)
}

func (h *ContentHandler) DeleteDictionaryEntry(c *fiber.Ctx) error {
	if err := h.store.DeleteDictionaryEntry(c.Params("entryId")); err != nil {
		return lifecycleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dictionary entry deleted"})
}
