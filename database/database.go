package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/patentehub/patente_hub/configs"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
	"github.com/patentehub/patente_hub/utils"
)

// SchemaVersion bumps whenever a collection or index is added. Migrate
// compares it with the stored version and only runs the structural
// upgrade when behind; upgrades are additive and never drop data.
const SchemaVersion = 2

// Connect opens the single database connection for the process.
// DB_DRIVER selects sqlite (default, one local file) or postgres. A
// failed open wraps store.ErrStorageUnavailable so callers can surface
// a fatal storage error instead of running without persistence.
func Connect() (*gorm.DB, error) {
	driver := config.ConfigOr("DB_DRIVER", "sqlite")

	var dial gorm.Dialector
	switch driver {
	case "sqlite":
		path := config.ConfigOr("DB_PATH", "patente_hub.db")
		dial = sqlite.Open(path)
	case "postgres":
		dial = postgres.Open(config.Config("DATABASE_URL"))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}

	log.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	var meta models.SchemaMeta
	err := db.AutoMigrate(&models.SchemaMeta{})
	if err != nil {
		return fmt.Errorf("migrate schema meta: %w", err)
	}
	if err := db.First(&meta).Error; err == nil && meta.Version >= SchemaVersion {
		log.Printf("Schema already at version %d, skipping migration", meta.Version)
		return nil
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	meta.Version = SchemaVersion
	if err := db.Save(&meta).Error; err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	log.Println("✅ Database migration successful")
	return nil
}

// SeedAdmin creates the bootstrap admin account when ADMIN_EMAIL is
// configured and no such user exists yet.
func SeedAdmin(db *gorm.DB) error {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("Admin credentials not configured, skipping seed")
		return nil
	}
	// Login lowercases emails, so the seed must too.
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("check for admin user: %w", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		ID:       utils.GenerateID(),
		Name:     config.ConfigOr("ADMIN_FULL_NAME", "Administrator"),
		Email:    adminEmail,
		Password: hashed,
		Role:     "admin",
		Verified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}
