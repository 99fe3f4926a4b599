package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "liker@example.com", "liker")
	p := seedPost(t, s, u.ID)

	liked, err := s.ToggleLike(p.ID, u.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)

	has, err := s.HasLiked(p.ID, u.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Toggling again lands back exactly where we started.
	liked, err = s.ToggleLike(p.ID, u.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)

	has, err = s.HasLiked(p.ID, u.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestToggleLikeMissingPost(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "liker@example.com", "liker")

	_, err := s.ToggleLike("no-such-post", u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLikeSurfacesLookupErrors(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "liker@example.com", "liker")
	p := seedPost(t, s, u.ID)

	// Break the likes table so the existence lookup fails with a real
	// storage error rather than a not-found.
	require.NoError(t, s.DB().Migrator().DropTable(&models.Like{}))

	_, err := s.ToggleLike(p.ID, u.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// The failed toggle must not have moved the counter.
	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.LikesCount)
}

func TestLikesCountTracksDistinctUsers(t *testing.T) {
	s := newTestStore(t)
	a := seedUser(t, s, "a@example.com", "a")
	b := seedUser(t, s, "b@example.com", "b")
	p := seedPost(t, s, a.ID)

	_, err := s.ToggleLike(p.ID, a.ID)
	require.NoError(t, err)
	_, err = s.ToggleLike(p.ID, b.ID)
	require.NoError(t, err)

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)

	likes, err := s.ListLikesByPost(p.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
