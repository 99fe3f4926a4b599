package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patentehub/patente_hub/store"
	"github.com/patentehub/patente_hub/utils"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:database_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestSeedAdminEmailMatchesLogin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db))
	t.Setenv("ADMIN_EMAIL", "Admin@PatenteHub.Com")
	t.Setenv("ADMIN_PASSWORD", "super-secret")

	require.NoError(t, SeedAdmin(db))

	// The login path lowercases emails, so the seeded account must be
	// findable under the lowercased form.
	s := store.New(db)
	admin, err := s.GetUserByEmail("admin@patentehub.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, admin.Verified)
	assert.True(t, utils.VerifyPassword("super-secret", admin.Password))
}

func TestSeedAdminSkipsWhenUnconfigured(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Migrate(db))
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.NoError(t, SeedAdmin(db))

	s := store.New(db)
	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}
