package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
)

func ProfileRoutes(app *fiber.App, h *handlers.ProfileHandler) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", h.GetProfile)
	profile.Put("", h.UpdateProfile)
	profile.Put("/settings", h.UpdateSettings)
	profile.Put("/progress", h.UpdateProgress)
	profile.Post("/visits", h.RecordVisit)
	profile.Get("/notifications", h.ListNotifications)
	profile.Put("/notifications/:id/read", h.MarkNotificationRead)

	api.Post("/uploads/signature", middleware.Protected(), handlers.GenerateUploadSignature)
}
