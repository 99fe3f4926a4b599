package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
)

// ContentRoutes exposes the learning catalog. Reads are open to any
// signed-in user; everything that mutates the catalog sits behind the
// manager gate under /admin/content.
func ContentRoutes(app *fiber.App, h *handlers.ContentHandler) {
	api := app.Group("/api/v1")

	content := api.Group("/content", middleware.Protected())
	content.Get("/sections", h.ListSections)
	content.Get("/lessons", h.ListLessons)
	content.Get("/questions", h.ListQuestions)
	content.Get("/signs", h.ListSigns)
	content.Get("/dictionary/sections", h.ListDictionarySections)
	content.Get("/dictionary/entries", h.ListDictionaryEntries)

	admin := api.Group("/admin/content", middleware.Protected(), middleware.ManagerRequired())

	admin.Post("/sections", h.CreateSection)
	admin.Put("/sections/:sectionId", h.UpdateSection)
	admin.Delete("/sections/:sectionId", h.DeleteSection)
	admin.Delete("/sections/:sectionId/permanent", h.PermanentDeleteSection)
	admin.Put("/sections/:sectionId/archive", h.ArchiveSection)
	admin.Put("/sections/:sectionId/restore", h.RestoreSection)

	admin.Post("/lessons", h.CreateLesson)
	admin.Put("/lessons/:lessonId", h.UpdateLesson)
	admin.Delete("/lessons/:lessonId", h.DeleteLesson)
	admin.Delete("/lessons/:lessonId/permanent", h.PermanentDeleteLesson)
	admin.Put("/lessons/:lessonId/archive", h.ArchiveLesson)
	admin.Put("/lessons/:lessonId/restore", h.RestoreLesson)

	admin.Post("/questions", h.CreateQuestion)
	admin.Put("/questions/:questionId", h.UpdateQuestion)
	admin.Delete("/questions/:questionId", h.DeleteQuestion)
	admin.Delete("/questions/:questionId/permanent", h.PermanentDeleteQuestion)
	admin.Put("/questions/:questionId/archive", h.ArchiveQuestion)
	admin.Put("/questions/:questionId/restore", h.RestoreQuestion)

	admin.Post("/signs", h.CreateSign)
	admin.Put("/signs/:signId", h.UpdateSign)
	admin.Delete("/signs/:signId", h.DeleteSign)
	admin.Delete("/signs/:signId/permanent", h.PermanentDeleteSign)
	admin.Put("/signs/:signId/archive", h.ArchiveSign)
	admin.Put("/signs/:signId/restore", h.RestoreSign)

	admin.Post("/dictionary/sections", h.CreateDictionarySection)
	admin.Delete("/dictionary/sections/:sectionId", h.DeleteDictionarySection)
	admin.Post("/dictionary/entries", h.CreateDictionaryEntry)
	admin.Delete("/dictionary/entries/:entryId", h.DeleteDictionaryEntry)
}
