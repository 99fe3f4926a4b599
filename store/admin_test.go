package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patentehub/patente_hub/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	sec := seedSection(t, src, "قواعد المرور", 1)
	require.NoError(t, src.SoftDeleteSection(sec.ID))
	seedSection(t, src, "الإشارات", 2)

	exported, err := src.ExportCollection("sections")
	require.NoError(t, err)
	raw, err := json.Marshal(exported)
	require.NoError(t, err)

	dst := newTestStore(t)
	written, err := dst.ImportCollection("sections", raw)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	// Lifecycle state survives the round trip.
	got, err := dst.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, got.Status)
	assert.NotNil(t, got.DeletedAt)
}

func TestImportOverwritesByPrimaryKey(t *testing.T) {
	s := newTestStore(t)
	sec := seedSection(t, s, "قديم", 1)

	raw, err := json.Marshal([]models.Section{{
		ID: sec.ID, NameAr: "محدث", NameIt: "Aggiornata", Order: 5,
	}})
	require.NoError(t, err)

	written, err := s.ImportCollection("sections", raw)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	got, err := s.GetSection(sec.ID)
	require.NoError(t, err)
	assert.Equal(t, "محدث", got.NameAr)
	assert.Equal(t, 5, got.Order)
}

func TestUnknownCollection(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ExportCollection("bogus")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ImportCollection("bogus", json.RawMessage(`[]`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionNamesCoverEveryStore(t *testing.T) {
	names := CollectionNames()
	assert.Len(t, names, 19)
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "communityNotifications")
	assert.Contains(t, names, "dictionarySections")
}

func TestAdminLogAppendAndList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AppendAdminLog("admin-1", "ban_user", "user-9"))
	require.NoError(t, s.AppendAdminLog("admin-1", "restore_section", "sec-3"))

	logs, err := s.ListAdminLogs(1)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	logs, err = s.ListAdminLogs(0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
