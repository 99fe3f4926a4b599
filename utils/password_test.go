package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sicura123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sicura123!", hash)

	assert.True(t, VerifyPassword("Sicura123!", hash))
	assert.False(t, VerifyPassword("sbagliata", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyLegacyHash(t *testing.T) {
	legacy := LegacyHashPassword("vecchia-password")
	require.Len(t, legacy, 64)

	assert.True(t, VerifyPassword("vecchia-password", legacy))
	assert.False(t, VerifyPassword("altra-password", legacy))
}

func TestLegacyHashIsDeterministic(t *testing.T) {
	assert.Equal(t,
		LegacyHashPassword("abc"),
		LegacyHashPassword("abc"))
}
