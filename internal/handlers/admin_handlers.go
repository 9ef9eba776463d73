package handlers

import (
	"log"
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/labstack/echo/v4"
)

// logAdminAction records who performed an account mutation. Tokens carry no
// audit trail of their own, so this is the only record of the acting admin.
func logAdminAction(c echo.Context, action, target string) {
	if actor := common.AdminFromContext(c.Request().Context()); actor != nil {
		log.Printf("admin %q %s %q", actor.Username, action, target)
	}
}

// AdminHandlers handles admin account management HTTP requests
type AdminHandlers struct {
	adminService services.AdminService
}

func NewAdminHandlers(adminService services.AdminService) *AdminHandlers {
	return &AdminHandlers{adminService: adminService}
}

// ListAdmins handles listing admin accounts; passwords are never serialized
func (h *AdminHandlers) ListAdmins(c echo.Context) error {
	users, err := h.adminService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "Failed to list admins")
	}
	return c.JSON(http.StatusOK, users)
}

// CreateAdminRequest represents the admin creation payload
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAdmin handles creating a new admin account
func (h *AdminHandlers) CreateAdmin(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	user, err := h.adminService.Create(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return common.SendError(c, err, "Failed to create admin")
	}
	logAdminAction(c, "created admin", req.Username)
	return c.JSON(http.StatusCreated, user)
}

// DeleteAdmin handles deleting an admin account. The seeded default admin
// and the last remaining admin are refused.
func (h *AdminHandlers) DeleteAdmin(c echo.Context) error {
	username := c.Param("username")

	if err := h.adminService.Delete(c.Request().Context(), username); err != nil {
		return common.SendError(c, err, "Failed to delete admin")
	}
	logAdminAction(c, "deleted admin", username)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// RenameAdminRequest represents the rename payload
type RenameAdminRequest struct {
	NewUsername string `json:"new_username"`
}

// RenameAdmin handles changing an admin's username; the default admin is refused
func (h *AdminHandlers) RenameAdmin(c echo.Context) error {
	username := c.Param("username")

	var req RenameAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.adminService.Rename(c.Request().Context(), username, req.NewUsername); err != nil {
		return common.SendError(c, err, "Failed to rename admin")
	}
	logAdminAction(c, "renamed admin", username)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// ChangeAdminPasswordRequest represents the password change payload
type ChangeAdminPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangeAdminPassword handles rotating an admin's credential. All tokens
// previously derived from the old credential stop validating immediately.
func (h *AdminHandlers) ChangeAdminPassword(c echo.Context) error {
	username := c.Param("username")

	var req ChangeAdminPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.adminService.ChangePassword(c.Request().Context(), username, req.NewPassword); err != nil {
		return common.SendError(c, err, "Failed to change password")
	}
	logAdminAction(c, "changed password for", username)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
