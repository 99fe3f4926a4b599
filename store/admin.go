package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/utils"
)

func (s *Store) AppendAdminLog(adminID, action, details string) error {
	entry := models.AdminLog{
		ID:      utils.GenerateID(),
		AdminID: adminID,
		Action:  action,
		Details: details,
	}
	return s.db.Create(&entry).Error
}

func (s *Store) ListAdminLogs(limit int) ([]models.AdminLog, error) {
	var logs []models.AdminLog
	tx := s.db.Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&logs).Error
	return logs, err
}

// collectionCodec serializes one collection for export/import.
type collectionCodec struct {
	export   func(db *gorm.DB) (any, error)
	doImport func(db *gorm.DB, data json.RawMessage) (int, error)
}

func codec[T any]() collectionCodec {
	return collectionCodec{
		export: func(db *gorm.DB) (any, error) {
			var recs []T
			if err := db.Find(&recs).Error; err != nil {
				return nil, err
			}
			return recs, nil
		},
		doImport: func(db *gorm.DB, data json.RawMessage) (int, error) {
			var recs []T
			if err := json.Unmarshal(data, &recs); err != nil {
				return 0, err
			}
			written := 0
			for i := range recs {
				// Upsert by primary key. Foreign keys are not checked;
				// the admin owns consistency of imported data.
				err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&recs[i]).Error
				if err != nil {
					return written, err
				}
				written++
			}
			return written, nil
		},
	}
}

var collections = map[string]collectionCodec{
	"users":                   codec[models.User](),
	"sections":                codec[models.Section](),
	"lessons":                 codec[models.Lesson](),
	"questions":               codec[models.Question](),
	"signs":                   codec[models.Sign](),
	"dictionarySections":      codec[models.DictionarySection](),
	"dictionaryEntries":       codec[models.DictionaryEntry](),
	"posts":                   codec[models.Post](),
	"comments":                codec[models.Comment](),
	"likes":                   codec[models.Like](),
	"reports":                 codec[models.Report](),
	"quizResults":             codec[models.QuizResult](),
	"userMistakes":            codec[models.UserMistake](),
	"trainingSessions":        codec[models.TrainingSession](),
	"notifications":           codec[models.Notification](),
	"communityNotifications":  codec[models.CommunityNotification](),
	"pageVisits":              codec[models.PageVisit](),
	"adminLogs":               codec[models.AdminLog](),
	"authTokens":              codec[models.AuthToken](),
}

// CollectionNames lists the exportable collections.
func CollectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	return names
}

// ExportCollection dumps every record of one collection.
func (s *Store) ExportCollection(name string) (any, error) {
	c, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q: %w", name, ErrNotFound)
	}
	return c.export(s.db)
}

// ImportCollection inserts or overwrites records by primary key and
// returns how many were written.
func (s *Store) ImportCollection(name string, data json.RawMessage) (int, error) {
	c, ok := collections[name]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q: %w", name, ErrNotFound)
	}
	return c.doImport(s.db, data)
}
