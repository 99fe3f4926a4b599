package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

func (s *Store) CreateQuizResult(r *models.QuizResult) error {
	if r.ID == "" {
		r.ID = utils.GenerateID()
	}
	return s.db.Create(r).Error
}

func (s *Store) ListQuizResults(userID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error
	return results, err
}

// RecordMistake logs one wrong answer. A repeat mistake on the same
// question bumps the running count instead of inserting a new row.
func (s *Store) RecordMistake(userID string, q *models.Question, userAnswer bool) error {
	var existing models.UserMistake
	err := s.db.Where("user_id = ? AND question_id = ?", userID, q.ID).First(&existing).Error
	switch {
	case err == nil:
		existing.Count++
		existing.UserAnswer = userAnswer
		existing.LastMistakeAt = time.Now()
		return s.db.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		mistake := models.UserMistake{
			ID:            utils.GenerateID(),
			UserID:        userID,
			QuestionID:    q.ID,
			QuestionAr:    q.QuestionAr,
			QuestionIt:    q.QuestionIt,
			CorrectAnswer: q.IsTrue,
			UserAnswer:    userAnswer,
			Count:         1,
			LastMistakeAt: time.Now(),
		}
		return s.db.Create(&mistake).Error
	default:
		return err
	}
}

// ListMistakes returns the user's weak points, worst first.
func (s *Store) ListMistakes(userID string) ([]models.UserMistake, error) {
	var mistakes []models.UserMistake
	err := s.db.Where("user_id = ?", userID).Order("count desc, last_mistake_at desc").Find(&mistakes).Error
	return mistakes, err
}

// ClearMistake removes a weak point once the user answers it correctly.
func (s *Store) ClearMistake(userID, questionID string) error {
	return s.db.Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&models.UserMistake{}).Error
}

func (s *Store) CreateTrainingSession(ts *models.TrainingSession) error {
	if ts.ID == "" {
		ts.ID = utils.GenerateID()
	}
	return s.db.Create(ts).Error
}

func (s *Store) ListTrainingSessions(userID string) ([]models.TrainingSession, error) {
	var sessions []models.TrainingSession
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&sessions).Error
	return sessions, err
}
