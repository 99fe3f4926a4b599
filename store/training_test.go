package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestRecordMistakeAggregatesRepeats(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "m@example.com", "m")
	q := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "سؤال", QuestionIt: "Domanda", IsTrue: true,
	}
	require.NoError(t, s.CreateQuestion(q))

	require.NoError(t, s.RecordMistake(u.ID, q, false))
	require.NoError(t, s.RecordMistake(u.ID, q, false))

	mistakes, err := s.ListMistakes(u.ID)
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 2, mistakes[0].Count)
	assert.Equal(t, q.ID, mistakes[0].QuestionID)
	assert.True(t, mistakes[0].CorrectAnswer)
}

func TestListMistakesWorstFirst(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "m@example.com", "m")
	easy := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "سهل", QuestionIt: "Facile", IsTrue: true,
	}
	hard := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "صعب", QuestionIt: "Difficile", IsTrue: false,
	}
	require.NoError(t, s.CreateQuestion(easy))
	require.NoError(t, s.CreateQuestion(hard))

	require.NoError(t, s.RecordMistake(u.ID, easy, false))
	require.NoError(t, s.RecordMistake(u.ID, hard, true))
	require.NoError(t, s.RecordMistake(u.ID, hard, true))

	mistakes, err := s.ListMistakes(u.ID)
	require.NoError(t, err)
	require.Len(t, mistakes, 2)
	assert.Equal(t, hard.ID, mistakes[0].QuestionID)
}

func TestClearMistake(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "m@example.com", "m")
	q := &models.Question{
		LessonID: "l1", SectionID: "s1",
		QuestionAr: "سؤال", QuestionIt: "Domanda", IsTrue: true,
	}
	require.NoError(t, s.CreateQuestion(q))
	require.NoError(t, s.RecordMistake(u.ID, q, false))

	require.NoError(t, s.ClearMistake(u.ID, q.ID))

	mistakes, err := s.ListMistakes(u.ID)
	require.NoError(t, err)
	assert.Empty(t, mistakes)
}

func TestQuizResultsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "m@example.com", "m")

	first := &models.QuizResult{UserID: u.ID, Score: 60, TotalQuestions: 10, CorrectAnswers: 6, WrongAnswers: 4}
	require.NoError(t, s.CreateQuizResult(first))
	second := &models.QuizResult{UserID: u.ID, Score: 80, TotalQuestions: 10, CorrectAnswers: 8, WrongAnswers: 2}
	require.NoError(t, s.CreateQuizResult(second))

	results, err := s.ListQuizResults(u.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestTrainingSessions(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "m@example.com", "m")

	sess := &models.TrainingSession{UserID: u.ID, Type: "signs", Score: 9, Total: 12}
	require.NoError(t, s.CreateTrainingSession(sess))
	assert.NotEmpty(t, sess.ID)

	got, err := s.ListTrainingSessions(u.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "signs", got[0].Type)
}
