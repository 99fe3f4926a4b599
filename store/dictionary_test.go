package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestDictionaryEntriesBySection(t *testing.T) {
	s := newTestStore(t)
	sec := &models.DictionarySection{NameAr: "مصطلحات", NameIt: "Termini"}
	require.NoError(t, s.CreateDictionarySection(sec))
	other := &models.DictionarySection{NameAr: "أخرى", NameIt: "Altri"}
	require.NoError(t, s.CreateDictionarySection(other))

	entry := &models.DictionaryEntry{
		SectionID: sec.ID, TermIt: "precedenza", TermAr: "أولوية المرور",
	}
	require.NoError(t, s.CreateDictionaryEntry(entry))
	require.NoError(t, s.CreateDictionaryEntry(&models.DictionaryEntry{
		SectionID: other.ID, TermIt: "patente", TermAr: "رخصة القيادة",
	}))

	got, err := s.ListDictionaryEntries(sec.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "precedenza", got[0].TermIt)
}

func TestDictionaryDeleteIsPermanent(t *testing.T) {
	s := newTestStore(t)
	sec := &models.DictionarySection{NameAr: "مصطلحات", NameIt: "Termini"}
	require.NoError(t, s.CreateDictionarySection(sec))

	require.NoError(t, s.DeleteDictionarySection(sec.ID))
	assert.ErrorIs(t, s.DeleteDictionarySection(sec.ID), ErrNotFound)

	secs, err := s.ListDictionarySections()
	require.NoError(t, err)
	assert.Empty(t, secs)
}
