package services

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"
	"keyhub/internal/repositories"

	"github.com/google/uuid"
)

type ProjectService interface {
	Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, req *UpdateProjectRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Project, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	ID          uuid.UUID
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *projectService) Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("project name is required: %w", common.ErrValidation)
	}

	project := &models.Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, req *UpdateProjectRequest) error {
	existing, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil && *req.Name != "" {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	return s.projectRepo.Update(ctx, existing)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// The default project is permanently protected. Licenses under other
	// projects go with them via the store's cascade.
	if existing.IsDefault {
		return fmt.Errorf("default project cannot be deleted: %w", common.ErrForbidden)
	}
	return s.projectRepo.Delete(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.projectRepo.List(ctx)
}
