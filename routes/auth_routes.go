package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/handlers"
	"github.com/patentehub/patente_hub/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", middleware.Protected(), h.Logout)
	auth.Get("/check-username", h.CheckUsername)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
}
