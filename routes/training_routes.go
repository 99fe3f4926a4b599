package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
)

func TrainingRoutes(app *fiber.App, h *handlers.TrainingHandler) {
	api := app.Group("/api/v1")

	training := api.Group("/training", middleware.Protected())
	training.Post("/quizzes", h.SubmitQuiz)
	training.Get("/results", h.ListResults)
	training.Get("/weak-points", h.ListWeakPoints)
	training.Post("/sessions", h.RecordSession)
	training.Get("/sessions", h.ListSessions)
}
