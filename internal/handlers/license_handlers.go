package handlers

import (
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LicenseHandlers handles license key management HTTP requests
type LicenseHandlers struct {
	licenseService services.LicenseService
}

func NewLicenseHandlers(licenseService services.LicenseService) *LicenseHandlers {
	return &LicenseHandlers{licenseService: licenseService}
}

// optionalProjectID reads the project_id query parameter, if present.
func optionalProjectID(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("project_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ListLicenses handles listing licenses, optionally filtered by project
func (h *LicenseHandlers) ListLicenses(c echo.Context) error {
	projectID, err := optionalProjectID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project_id format")
	}

	licenses, err := h.licenseService.List(c.Request().Context(), projectID)
	if err != nil {
		return common.SendError(c, err, "Failed to list licenses")
	}
	return c.JSON(http.StatusOK, licenses)
}

// CreateLicenseRequest represents the license issue payload
type CreateLicenseRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	CustomKey string    `json:"custom_key"`
	Remarks   string    `json:"remarks"`
}

// IssueLicenseResponse carries the issued key string
type IssueLicenseResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
}

// CreateLicense handles issuing a license with an auto-generated or
// caller-supplied key
func (h *LicenseHandlers) CreateLicense(c echo.Context) error {
	var req CreateLicenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	key, err := h.licenseService.Issue(c.Request().Context(), &services.IssueLicenseRequest{
		ProjectID: req.ProjectID,
		CustomKey: req.CustomKey,
		Remarks:   req.Remarks,
	})
	if err != nil {
		return common.SendError(c, err, "Failed to issue license")
	}
	return c.JSON(http.StatusCreated, IssueLicenseResponse{Success: true, Key: key})
}

// RegisterLicenseRequest represents the public self-service payload
type RegisterLicenseRequest struct {
	ProjectName string `json:"project_name"`
	Key         string `json:"key"`
	CustomKey   string `json:"custom_key"`
	Remarks     string `json:"remarks"`
}

// RegisterLicense handles unauthenticated self-service registration of a
// caller-supplied key under a named project
func (h *LicenseHandlers) RegisterLicense(c echo.Context) error {
	var req RegisterLicenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	// the client may send either field name
	key := req.Key
	if key == "" {
		key = req.CustomKey
	}

	issued, err := h.licenseService.RegisterPublic(c.Request().Context(), &services.RegisterLicenseRequest{
		ProjectName: req.ProjectName,
		Key:         key,
		Remarks:     req.Remarks,
	})
	if err != nil {
		return common.SendError(c, err, "Failed to register license")
	}
	return c.JSON(http.StatusCreated, IssueLicenseResponse{Success: true, Key: issued})
}

// SetLicenseStatusRequest represents the status toggle payload
type SetLicenseStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

// SetLicenseStatus handles toggling a key's active flag. Without a
// project_id query parameter every row carrying the key value is updated.
func (h *LicenseHandlers) SetLicenseStatus(c echo.Context) error {
	key := c.Param("key")

	var req SetLicenseStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.IsActive == nil {
		return common.SendValidationError(c, "is_active", "is_active is required")
	}

	projectID, err := optionalProjectID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project_id format")
	}

	if err := h.licenseService.SetActive(c.Request().Context(), key, projectID, *req.IsActive); err != nil {
		return common.SendError(c, err, "Failed to update license status")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// SetLicenseRemarksRequest represents the remarks update payload
type SetLicenseRemarksRequest struct {
	Remarks string `json:"remarks"`
}

// SetLicenseRemarks handles updating a key's remarks
func (h *LicenseHandlers) SetLicenseRemarks(c echo.Context) error {
	key := c.Param("key")

	var req SetLicenseRemarksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	projectID, err := optionalProjectID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project_id format")
	}

	if err := h.licenseService.SetRemarks(c.Request().Context(), key, projectID, req.Remarks); err != nil {
		return common.SendError(c, err, "Failed to update license remarks")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteLicense handles deleting licenses by key; bindings cascade with them
func (h *LicenseHandlers) DeleteLicense(c echo.Context) error {
	key := c.Param("key")

	projectID, err := optionalProjectID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project_id format")
	}

	if err := h.licenseService.Delete(c.Request().Context(), key, projectID); err != nil {
		return common.SendError(c, err, "Failed to delete license")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
