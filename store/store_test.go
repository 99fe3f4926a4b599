package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

var testDBSeq int64

// newTestStore opens a fresh in-memory database per test. The shared
// cache keeps every pooled connection on the same database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Lesson{},
		&models.Question{},
		&models.Sign{},
		&models.DictionarySection{},
		&models.DictionaryEntry{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Report{},
		&models.QuizResult{},
		&models.UserMistake{},
		&models.TrainingSession{},
		&models.Notification{},
		&models.CommunityNotification{},
		&models.PageVisit{},
		&models.AdminLog{},
		&models.AuthToken{},
	))
	return New(db)
}

func seedUser(t *testing.T, s *Store, email, username string) *models.User {
	t.Helper()
	u := &models.User{
		Email:    email,
		Password: "hashed",
		Name:     "Test User",
		Username: username,
	}
	require.NoError(t, s.CreateUser(u))
	return u
}

func seedPost(t *testing.T, s *Store, userID string) *models.Post {
	t.Helper()
	p := &models.Post{
		ID:         utils.GenerateID(),
		UserID:     userID,
		UserName:   "Test User",
		UserAvatar: "avatar.png",
		Content:    "hello",
	}
	require.NoError(t, s.CreatePost(p))
	return p
}

func seedSection(t *testing.T, s *Store, nameAr string, order int) *models.Section {
	t.Helper()
	sec := &models.Section{
		NameAr: nameAr,
		NameIt: "Sezione",
		Order:  order,
	}
	require.NoError(t, s.CreateSection(sec))
	return sec
}
