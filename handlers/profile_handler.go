package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/middleware"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
)

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(s *store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(user)
}

type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio"`
	BirthDate    string `json:"birth_date"`
	Country      string `json:"country"`
	Province     string `json:"province"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone"`
	PhoneCode    string `json:"phone_code"`
	ItalianLevel string `json:"italian_level"`
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.store.GetUser(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Avatar = req.Avatar
	user.Bio = req.Bio
	user.BirthDate = req.BirthDate
	user.Country = req.Country
	user.Province = req.Province
	user.Gender = req.Gender
	user.Phone = req.Phone
	user.PhoneCode = req.PhoneCode
	user.ItalianLevel = req.ItalianLevel
	user.ProfileComplete = req.BirthDate != "" && req.Country != ""

	if err := h.store.UpdateUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(user)
}

func (h *ProfileHandler) UpdateSettings(c *fiber.Ctx) error {
	var settings models.UserSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.store.UpdateUserSettings(middleware.UserID(c), settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.JSON(settings)
}

func (h *ProfileHandler) UpdateProgress(c *fiber.Ctx) error {
	var progress models.UserProgress
	if err := c.BodyParser(&progress); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.store.UpdateUserProgress(middleware.UserID(c), progress); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}
	return c.JSON(progress)
}

// RecordVisit logs a page open for the admin analytics dashboard.
func (h *ProfileHandler) RecordVisit(c *fiber.Ctx) error {
	type Request struct {
		Page string `json:"page" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.store.RecordPageVisit(middleware.UserID(c), req.Page); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record visit"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) ListNotifications(c *fiber.Ctx) error {
	notifs, err := h.store.ListNotifications(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(notifs)
}

func (h *ProfileHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.store.MarkNotificationRead(c.Params("notificationId")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
