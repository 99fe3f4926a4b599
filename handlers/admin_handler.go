package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/patentehub/patente_hub/middleware"
	"github.com/patentehub/patente_hub/models"
	"github.com/patentehub/patente_hub/store"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

func (h *AdminHandler) logAction(c *fiber.Ctx, action, details string) {
	if err := h.store.AppendAdminLog(middleware.UserID(c), action, details); err != nil {
		log.Printf("Failed to write admin log (%s): %v", action, err)
	}
}

// --- User management ---

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func (h *AdminHandler) SetBanned(c *fiber.Ctx) error {
	type Request struct {
		Banned bool `json:"banned"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	userID := c.Params("userId")
	if err := h.store.SetUserBanned(userID, req.Banned); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if req.Banned {
		// A banned user has no live sessions.
		_ = h.store.DeleteAuthTokensByUser(userID)
	}
	h.logAction(c, "set_banned", fmt.Sprintf("user=%s banned=%t", userID, req.Banned))
	return c.JSON(fiber.Map{"message": "User ban state updated"})
}

func (h *AdminHandler) SetRole(c *fiber.Ctx) error {
	type Request struct {
		Role string `json:"role" validate:"required,oneof=user admin manager"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID := c.Params("userId")
	if err := h.store.SetUserRole(userID, req.Role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	h.logAction(c, "set_role", fmt.Sprintf("user=%s role=%s", userID, req.Role))
	return c.JSON(fiber.Map{"message": "User role updated"})
}

func (h *AdminHandler) SetVerified(c *fiber.Ctx) error {
	type Request struct {
		Verified bool `json:"verified"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	userID := c.Params("userId")
	if err := h.store.SetUserVerified(userID, req.Verified); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	h.logAction(c, "set_verified", fmt.Sprintf("user=%s verified=%t", userID, req.Verified))
	return c.JSON(fiber.Map{"message": "User verification updated"})
}

func (h *AdminHandler) SetPermissions(c *fiber.Ctx) error {
	type Request struct {
		Permissions []string `json:"permissions" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID := c.Params("userId")
	if err := h.store.SetUserPermissions(userID, req.Permissions); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	h.logAction(c, "set_permissions", fmt.Sprintf("user=%s", userID))
	return c.JSON(fiber.Map{"message": "User permissions updated"})
}

// SetRestriction toggles one community capability for a user:
// posting, commenting or replying.
func (h *AdminHandler) SetRestriction(c *fiber.Ctx) error {
	type Request struct {
		Action  string `json:"action" validate:"required,oneof=post comment reply"`
		Allowed bool   `json:"allowed"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID := c.Params("userId")
	if err := h.store.SetCommunityRestriction(userID, req.Action, req.Allowed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	h.logAction(c, "set_restriction", fmt.Sprintf("user=%s action=%s allowed=%t", userID, req.Action, req.Allowed))
	return c.JSON(fiber.Map{"message": "Community restriction updated"})
}

// DeleteUser is the explicit, irreversible account removal.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := h.store.PermanentDeleteUser(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	_ = h.store.DeleteAuthTokensByUser(userID)
	h.logAction(c, "permanent_delete_user", userID)
	return c.JSON(fiber.Map{"message": "User permanently deleted"})
}

// --- Reports ---

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.store.ListReports(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(reports)
}

func (h *AdminHandler) SetReportStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status" validate:"required,oneof=pending reviewed dismissed"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	reportID := c.Params("reportId")
	if err := h.store.SetReportStatus(reportID, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	h.logAction(c, "review_report", fmt.Sprintf("report=%s status=%s", reportID, req.Status))
	return c.JSON(fiber.Map{"message": "Report status updated"})
}

// --- Export / Import ---

func (h *AdminHandler) ExportCollection(c *fiber.Ctx) error {
	name := c.Params("collection")
	records, err := h.store.ExportCollection(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown collection"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Export failed"})
	}
	h.logAction(c, "export_collection", name)
	return c.JSON(fiber.Map{"collection": name, "records": records})
}

func (h *AdminHandler) ImportCollection(c *fiber.Ctx) error {
	name := c.Params("collection")
	var body struct {
		Records json.RawMessage `json:"records"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.Records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse records"})
	}
	written, err := h.store.ImportCollection(name, body.Records)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown collection"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Import failed",
			"written": written,
		})
	}
	h.logAction(c, "import_collection", fmt.Sprintf("%s written=%d", name, written))
	return c.JSON(fiber.Map{"collection": name, "written": written})
}

// --- Audit & analytics ---

func (h *AdminHandler) ListAdminLogs(c *fiber.Ctx) error {
	logs, err := h.store.ListAdminLogs(c.QueryInt("limit", 200))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(logs)
}

// GetDashboardAnalytics aggregates the overview numbers the admin
// landing page shows.
func (h *AdminHandler) GetDashboardAnalytics(c *fiber.Ctx) error {
	db := h.store.DB()

	var userCount, postCount, questionCount, pendingReports int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	db.Model(&models.Post{}).Count(&postCount)
	db.Model(&models.Question{}).Where("status = ? OR status = '' OR status IS NULL", models.StatusActive).Count(&questionCount)
	db.Model(&models.Report{}).Where("status = ?", models.ReportPending).Count(&pendingReports)

	weekAgo := time.Now().AddDate(0, 0, -7)
	visitsThisWeek, _ := h.store.CountPageVisits("", weekAgo)

	return c.JSON(fiber.Map{
		"users":            userCount,
		"posts":            postCount,
		"active_questions": questionCount,
		"pending_reports":  pendingReports,
		"visits_7d":        visitsThisWeek,
	})
}

// PurgeTrash runs the retention sweep on demand.
func (h *AdminHandler) PurgeTrash(c *fiber.Ctx) error {
	purged, err := h.store.PurgeExpired()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Purge failed"})
	}
	h.logAction(c, "purge_trash", fmt.Sprintf("purged=%d", purged))
	return c.JSON(fiber.Map{"purged": purged})
}
