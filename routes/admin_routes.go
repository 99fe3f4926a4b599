package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/users", h.ListUsers)
	admin.Put("/users/:userId/ban", h.SetBanned)
	admin.Put("/users/:userId/role", h.SetRole)
	admin.Put("/users/:userId/verify", h.SetVerified)
	admin.Put("/users/:userId/permissions", h.SetPermissions)
	admin.Put("/users/:userId/restrictions", h.SetRestriction)
	admin.Delete("/users/:userId", h.DeleteUser)

	admin.Get("/reports", h.ListReports)
	admin.Put("/reports/:reportId", h.SetReportStatus)

	admin.Get("/export/:collection", h.ExportCollection)
	admin.Post("/import/:collection", h.ImportCollection)

	admin.Get("/logs", h.ListAdminLogs)
	admin.Get("/analytics", h.GetDashboardAnalytics)
	admin.Post("/trash/purge", h.PurgeTrash)
}
