package handlers

import (
	"errors"
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/config"
	"keyhub/internal/services"

	"github.com/labstack/echo/v4"
)

// VerifyHandlers handles unauthenticated license verification. The
// discipline (project-scoped or machine-bound) is fixed at startup.
type VerifyHandlers struct {
	verifyService services.VerifyService
	mode          string
}

func NewVerifyHandlers(verifyService services.VerifyService, mode string) *VerifyHandlers {
	return &VerifyHandlers{verifyService: verifyService, mode: mode}
}

// VerifyRequest represents the verification payload. project_name is used
// in project mode, machine_id in machine mode.
type VerifyRequest struct {
	Key         string `json:"key"`
	ProjectName string `json:"project_name"`
	MachineID   string `json:"machine_id"`
}

// VerifyResponse mirrors the original wire contract: a valid flag plus a
// human-readable message.
type VerifyResponse struct {
	Valid       bool   `json:"valid"`
	Message     string `json:"message"`
	ProjectName string `json:"project_name,omitempty"`
	NewlyBound  bool   `json:"newly_bound,omitempty"`
}

// Verify decides validity for the configured discipline. Verification never
// mutates license state beyond the machine mode's bind-on-first-use.
func (h *VerifyHandlers) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	var result *services.VerifyResult
	var err error
	if h.mode == config.VerifyModeMachine {
		result, err = h.verifyService.VerifyMachine(c.Request().Context(), req.Key, req.MachineID)
	} else {
		result, err = h.verifyService.VerifyProject(c.Request().Context(), req.Key, req.ProjectName)
	}
	if err != nil {
		return h.sendInvalid(c, err)
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Valid:       true,
		Message:     "license valid",
		ProjectName: result.ProjectName,
		NewlyBound:  result.NewlyBound,
	})
}

func (h *VerifyHandlers) sendInvalid(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, VerifyResponse{Valid: false, Message: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, VerifyResponse{Valid: false, Message: "license not found"})
	case errors.Is(err, common.ErrDisabled):
		return c.JSON(http.StatusForbidden, VerifyResponse{Valid: false, Message: "license disabled"})
	default:
		return c.JSON(http.StatusInternalServerError, VerifyResponse{Valid: false, Message: "verification failed"})
	}
}
