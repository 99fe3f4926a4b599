package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestCreateUserLowercasesIdentity(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{
		Email:    "  Ahmed@Example.COM ",
		Password: "hashed",
		Name:     "Ahmed",
		Username: "AhmedDriver",
	}
	require.NoError(t, s.CreateUser(u))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ahmed@example.com", got.Email)
	assert.Equal(t, "ahmeddriver", got.Username)
	assert.Equal(t, "user", got.Role)
}

func TestCreateUserDuplicateEmailIsCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "ahmed@example.com", "ahmed")

	err := s.CreateUser(&models.User{
		Email:    "AHMED@example.com",
		Password: "hashed",
		Name:     "Other",
		Username: "other",
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGetUserByEmailIgnoresCase(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "sara@example.com", "sara")

	got, err := s.GetUserByEmail("SARA@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestGetUserMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUser("no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckUsernameAvailable(t *testing.T) {
	s := newTestStore(t)
	check, err := s.CheckUsername("fresh_name")
	require.NoError(t, err)
	assert.True(t, check.Available)
	assert.Empty(t, check.Suggestions)
}

func TestCheckUsernameTakenOffersSuggestions(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "a@example.com", "karim")
	seedUser(t, s, "b@example.com", "karim1")

	check, err := s.CheckUsername("Karim")
	require.NoError(t, err)
	assert.False(t, check.Available)
	require.NotEmpty(t, check.Suggestions)
	assert.NotContains(t, check.Suggestions, "karim1")
	assert.Contains(t, check.Suggestions, "karim2")
}

func TestSetUserBanned(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "x@example.com", "x")

	require.NoError(t, s.SetUserBanned(u.ID, true))
	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBanned)

	assert.ErrorIs(t, s.SetUserBanned("missing", true), ErrNotFound)
}

func TestSetCommunityRestriction(t *testing.T) {
	s := newTestStore(t)
	u := &models.User{
		Email: "y@example.com", Password: "hashed", Name: "Y", Username: "y",
		Restrictions: models.CommunityRestrictions{CanPost: true, CanComment: true, CanReply: true},
	}
	require.NoError(t, s.CreateUser(u))

	require.NoError(t, s.SetCommunityRestriction(u.ID, "comment", false))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.True(t, got.Restrictions.CanPost)
	assert.False(t, got.Restrictions.CanComment)
	assert.True(t, got.Restrictions.CanReply)

	assert.Error(t, s.SetCommunityRestriction(u.ID, "vote", false))
}

func TestTouchLastLogin(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "z@example.com", "z")
	require.Nil(t, u.LastLogin)

	require.NoError(t, s.TouchLastLogin(u.ID))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, time.Now(), *got.LastLogin, 5*time.Second)
}

func TestUpdateUserProgress(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "p@example.com", "p")

	progress := models.UserProgress{
		TotalQuizzes:   3,
		CorrectAnswers: 20,
		WrongAnswers:   10,
		Level:          2,
		XP:             140,
	}
	require.NoError(t, s.UpdateUserProgress(u.ID, progress))

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Progress.TotalQuizzes)
	assert.Equal(t, 140, got.Progress.XP)
	assert.Equal(t, 2, got.Progress.Level)
}

func TestPermanentDeleteUser(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "gone@example.com", "gone")

	require.NoError(t, s.PermanentDeleteUser(u.ID))
	_, err := s.GetUser(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
