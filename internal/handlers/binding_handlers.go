package handlers

import (
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BindingHandlers handles machine binding management HTTP requests
type BindingHandlers struct {
	bindingService services.BindingService
}

func NewBindingHandlers(bindingService services.BindingService) *BindingHandlers {
	return &BindingHandlers{bindingService: bindingService}
}

// ListBindings handles listing bindings for a license key
func (h *BindingHandlers) ListBindings(c echo.Context) error {
	key := c.Param("key")

	bindings, err := h.bindingService.ListByKey(c.Request().Context(), key)
	if err != nil {
		return common.SendError(c, err, "Failed to list bindings")
	}
	return c.JSON(http.StatusOK, bindings)
}

// Unbind handles deleting a single binding record
func (h *BindingHandlers) Unbind(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid binding ID format")
	}

	if err := h.bindingService.Unbind(c.Request().Context(), id); err != nil {
		return common.SendError(c, err, "Failed to delete binding")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// SetBindingRemarksRequest represents the binding remarks payload
type SetBindingRemarksRequest struct {
	Remarks string `json:"remarks"`
}

// SetBindingRemarks handles updating a binding's remarks
func (h *BindingHandlers) SetBindingRemarks(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid binding ID format")
	}

	var req SetBindingRemarksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.bindingService.SetRemarks(c.Request().Context(), id, req.Remarks); err != nil {
		return common.SendError(c, err, "Failed to update binding remarks")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
