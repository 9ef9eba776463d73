package handlers

import (
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProjectHandlers handles project management HTTP requests
type ProjectHandlers struct {
	projectService services.ProjectService
}

func NewProjectHandlers(projectService services.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{projectService: projectService}
}

// ListProjects handles getting all projects, most recent first
func (h *ProjectHandlers) ListProjects(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err, "Failed to list projects")
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject handles creating a new project
func (h *ProjectHandlers) CreateProject(c echo.Context) error {
	var req services.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	project, err := h.projectService.Create(c.Request().Context(), &req)
	if err != nil {
		return common.SendError(c, err, "Failed to create project")
	}
	return c.JSON(http.StatusCreated, project)
}

// UpdateProjectRequest represents the project update payload
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateProject handles renaming a project or editing its description
func (h *ProjectHandlers) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID format")
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updateReq := &services.UpdateProjectRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.projectService.Update(c.Request().Context(), updateReq); err != nil {
		return common.SendError(c, err, "Failed to update project")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteProject handles deleting a project; the default project is refused
func (h *ProjectHandlers) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid project ID format")
	}

	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		return common.SendError(c, err, "Failed to delete project")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
