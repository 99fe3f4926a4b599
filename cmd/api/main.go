package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/patentehub/patente_hub/database"
	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/jobs"
	"github.com/patentehub/patente_hub/notifications"
	"github.com/patentehub/patente_hub/routes"
	"github.com/patentehub/patente_hub/store"
	"github.com/patentehub/patente_hub/websocket"
)

func main() {
	db, err := database.Connect()
	if err != nil {
		if errors.Is(err, store.ErrStorageUnavailable) {
			log.Fatalf("🔥 Storage unavailable: %v", err)
		}
		log.Fatalf("🔥 Failed to connect to the database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate the database: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 Failed to seed the admin account: %v", err)
	}
	notifications.InitEmailService()

	s := store.New(db)
	if _, err := s.MigrateLegacyReplies(); err != nil {
		log.Printf("⚠️ Legacy reply migration failed: %v", err)
	}

	c := cron.New()
	c.AddFunc("@daily", func() { jobs.PurgeDeletedContent(s) })
	c.AddFunc("@hourly", func() { jobs.CleanExpiredTokens(s) })
	go c.Start()
	log.Println("✅ Cron jobs for trash purge and token cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Patente Hub",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Rome",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Patente Hub API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(s))
	routes.ProfileRoutes(app, handlers.NewProfileHandler(s))
	routes.ContentRoutes(app, handlers.NewContentHandler(s))
	routes.CommunityRoutes(app, handlers.NewCommunityHandler(s))
	routes.TrainingRoutes(app, handlers.NewTrainingHandler(s))
	routes.AdminRoutes(app, handlers.NewAdminHandler(s))

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
