package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/middleware"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
)

const (
	xpPerCorrectAnswer = 2
	xpPerQuizFinished  = 10
	xpPerLevel         = 100
)

type TrainingHandler struct {
	store *store.Store
}

func NewTrainingHandler(s *store.Store) *TrainingHandler {
	return &TrainingHandler{store: s}
}

type SubmitQuizRequest struct {
	TopicID   string              `json:"topic_id"`
	LessonID  string              `json:"lesson_id"`
	TimeSpent int                 `json:"time_spent"`
	Answers   []models.QuizAnswer `json:"answers" validate:"required,min=1"`
}

// SubmitQuiz stores the result, folds it into the user's progress and
// maintains the mistake log driving the weak-points mode.
func (h *TrainingHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	correct, wrong := 0, 0
	for _, a := range req.Answers {
		if a.Correct {
			correct++
		} else {
			wrong++
		}
	}
	total := len(req.Answers)

	result := models.QuizResult{
		UserID:         userID,
		TopicID:        req.TopicID,
		LessonID:       req.LessonID,
		Score:          correct * 100 / total,
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		TimeSpent:      req.TimeSpent,
		Answers:        req.Answers,
	}
	if err := h.store.CreateQuizResult(&result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store result"})
	}

	for _, a := range req.Answers {
		if a.Correct {
			// A correct answer clears the question from the weak points.
			if err := h.store.ClearMistake(userID, a.QuestionID); err != nil {
				log.Printf("Failed to clear mistake for question %s: %v", a.QuestionID, err)
			}
			continue
		}
		question, err := h.store.GetQuestion(a.QuestionID)
		if err != nil {
			continue
		}
		if err := h.store.RecordMistake(userID, question, a.UserAnswer); err != nil {
			log.Printf("Failed to record mistake for question %s: %v", a.QuestionID, err)
		}
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	progress := advanceProgress(user.Progress, correct, wrong)
	if err := h.store.UpdateUserProgress(userID, progress); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":   result,
		"progress": progress,
	})
}

// advanceProgress folds one finished quiz into the running totals:
// XP, level, daily streak and the readiness estimate.
func advanceProgress(p models.UserProgress, correct, wrong int) models.UserProgress {
	p.TotalQuizzes++
	p.CorrectAnswers += correct
	p.WrongAnswers += wrong
	p.XP += correct*xpPerCorrectAnswer + xpPerQuizFinished
	p.Level = p.XP/xpPerLevel + 1

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	switch p.LastStudyDate {
	case today:
		// Same day, streak unchanged.
	case yesterday:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.BestStreak {
		p.BestStreak = p.CurrentStreak
	}
	p.LastStudyDate = today

	if answered := p.CorrectAnswers + p.WrongAnswers; answered > 0 {
		p.ExamReadiness = p.CorrectAnswers * 100 / answered
	}
	return p
}

func (h *TrainingHandler) ListResults(c *fiber.Ctx) error {
	results, err := h.store.ListQuizResults(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(results)
}

// ListWeakPoints returns the user's repeated mistakes, worst first.
func (h *TrainingHandler) ListWeakPoints(c *fiber.Ctx) error {
	mistakes, err := h.store.ListMistakes(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(mistakes)
}

type TrainingSessionRequest struct {
	Type      string `json:"type" validate:"required,oneof=questions signs dictionary"`
	Score     int    `json:"score"`
	Total     int    `json:"total" validate:"required,gt=0"`
	TimeSpent int    `json:"time_spent"`
}

func (h *TrainingHandler) RecordSession(c *fiber.Ctx) error {
	var req TrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	session := models.TrainingSession{
		UserID:    middleware.UserID(c),
		Type:      req.Type,
		Score:     req.Score,
		Total:     req.Total,
		TimeSpent: req.TimeSpent,
	}
	if err := h.store.CreateTrainingSession(&session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store session"})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *TrainingHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.store.ListTrainingSessions(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sessions)
}
