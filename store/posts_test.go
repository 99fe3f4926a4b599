package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{
		Email: "author@example.com", Password: "hashed",
		Name: "Ahmed", Username: "ahmed", Avatar: "ahmed.png",
	}
	require.NoError(t, s.CreateUser(u))

	p := &models.Post{UserID: u.ID, Content: "مرحبا بالجميع"}
	require.NoError(t, s.CreatePost(p))

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", got.UserName)
	assert.Equal(t, "ahmed.png", got.UserAvatar)
	assert.Equal(t, models.PostTypeText, got.Type)
}

func TestListPostsPinnedFirst(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "author@example.com", "author")
	older := seedPost(t, s, u.ID)
	seedPost(t, s, u.ID)
	require.NoError(t, s.SetPostPinned(older.ID, true))

	got, err := s.ListPosts()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, older.ID, got[0].ID)
	assert.True(t, got[0].Pinned)
}

func TestDeletePostRemovesLikesAndComments(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "author@example.com", "author")
	p := seedPost(t, s, u.ID)

	_, err := s.ToggleLike(p.ID, u.ID)
	require.NoError(t, err)
	require.NoError(t, s.CreateComment(&models.Comment{
		PostID: p.ID, UserID: u.ID, Content: "تعليق",
	}))

	require.NoError(t, s.DeletePost(p.ID))

	_, err = s.GetPost(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	likes, err := s.ListLikesByPost(p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	comments, err := s.ListCommentsByPost(p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestVoteQuizPostTallies(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "author@example.com", "author")
	quiz := &models.Post{
		UserID:       u.ID,
		UserName:     u.Name,
		UserAvatar:   "x.png",
		Type:         models.PostTypeQuiz,
		QuizQuestion: "يجب التوقف عند إشارة قف؟",
		QuizAnswer:   true,
	}
	require.NoError(t, s.CreatePost(quiz))

	got, err := s.VoteQuizPost(quiz.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, got.QuizStats.TrueCount)
	assert.Equal(t, 0, got.QuizStats.FalseCount)

	got, err = s.VoteQuizPost(quiz.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.QuizStats.TrueCount)
	assert.Equal(t, 1, got.QuizStats.FalseCount)
}

func TestVoteQuizPostRejectsTextPosts(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "author@example.com", "author")
	p := seedPost(t, s, u.ID)

	_, err := s.VoteQuizPost(p.ID, true)
	assert.ErrorIs(t, err, ErrInvalidState)
}
