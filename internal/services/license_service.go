package services

import (
	"context"
	"errors"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"
	"keyhub/internal/repositories"

	"github.com/google/uuid"
)

// maxGenerateAttempts bounds the retry loop when an auto-generated key
// collides with an existing row. Collisions are resolved by the store's
// unique constraint, never by a read-then-write check.
const maxGenerateAttempts = 5

type LicenseService interface {
	Issue(ctx context.Context, req *IssueLicenseRequest) (string, error)
	RegisterPublic(ctx context.Context, req *RegisterLicenseRequest) (string, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]*models.License, error)
	SetActive(ctx context.Context, key string, projectID *uuid.UUID, active bool) error
	SetRemarks(ctx context.Context, key string, projectID *uuid.UUID, remarks string) error
	Delete(ctx context.Context, key string, projectID *uuid.UUID) error
}

type licenseService struct {
	licenseRepo repositories.LicenseRepository
	projectRepo repositories.ProjectRepository
	generateKey func() string
}

func NewLicenseService(licenseRepo repositories.LicenseRepository, projectRepo repositories.ProjectRepository) LicenseService {
	return &licenseService{
		licenseRepo: licenseRepo,
		projectRepo: projectRepo,
		generateKey: GenerateKey,
	}
}

type IssueLicenseRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	CustomKey string    `json:"custom_key"`
	Remarks   string    `json:"remarks"`
}

type RegisterLicenseRequest struct {
	ProjectName string `json:"project_name"`
	Key         string `json:"key"`
	Remarks     string `json:"remarks"`
}

// Issue creates one license row under the given project. A caller-supplied
// key gets a single insert attempt and surfaces a conflict as-is; an
// auto-generated key is retried with fresh keys up to maxGenerateAttempts.
func (s *licenseService) Issue(ctx context.Context, req *IssueLicenseRequest) (string, error) {
	if req.ProjectID == uuid.Nil {
		return "", fmt.Errorf("project_id is required: %w", common.ErrValidation)
	}

	if req.CustomKey != "" {
		license := &models.License{
			ID:         uuid.New(),
			ProjectID:  req.ProjectID,
			LicenseKey: req.CustomKey,
			IsActive:   true,
			Remarks:    req.Remarks,
		}
		if err := s.licenseRepo.Insert(ctx, license); err != nil {
			return "", err
		}
		return license.LicenseKey, nil
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		license := &models.License{
			ID:         uuid.New(),
			ProjectID:  req.ProjectID,
			LicenseKey: s.generateKey(),
			IsActive:   true,
			Remarks:    req.Remarks,
		}
		err := s.licenseRepo.Insert(ctx, license)
		if err == nil {
			return license.LicenseKey, nil
		}
		if !errors.Is(err, common.ErrConflict) {
			return "", err
		}
	}
	return "", common.ErrExhausted
}

// RegisterPublic is the self-service variant: the caller names the project
// and supplies its own key value.
func (s *licenseService) RegisterPublic(ctx context.Context, req *RegisterLicenseRequest) (string, error) {
	if req.Key == "" {
		return "", fmt.Errorf("key is required: %w", common.ErrValidation)
	}
	if req.ProjectName == "" {
		return "", fmt.Errorf("project_name is required: %w", common.ErrValidation)
	}

	project, err := s.projectRepo.GetByName(ctx, req.ProjectName)
	if err != nil {
		return "", err
	}

	license := &models.License{
		ID:         uuid.New(),
		ProjectID:  project.ID,
		LicenseKey: req.Key,
		IsActive:   true,
		Remarks:    req.Remarks,
	}
	if err := s.licenseRepo.Insert(ctx, license); err != nil {
		return "", err
	}
	return license.LicenseKey, nil
}

func (s *licenseService) List(ctx context.Context, projectID *uuid.UUID) ([]*models.License, error) {
	return s.licenseRepo.List(ctx, projectID)
}

// SetActive updates every row matching the key value; without a project_id
// the same key string issued under several projects is toggled as a set.
func (s *licenseService) SetActive(ctx context.Context, key string, projectID *uuid.UUID, active bool) error {
	affected, err := s.licenseRepo.SetActive(ctx, key, projectID, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("license key %q: %w", key, common.ErrNotFound)
	}
	return nil
}

func (s *licenseService) SetRemarks(ctx context.Context, key string, projectID *uuid.UUID, remarks string) error {
	affected, err := s.licenseRepo.SetRemarks(ctx, key, projectID, remarks)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("license key %q: %w", key, common.ErrNotFound)
	}
	return nil
}

func (s *licenseService) Delete(ctx context.Context, key string, projectID *uuid.UUID) error {
	affected, err := s.licenseRepo.Delete(ctx, key, projectID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("license key %q: %w", key, common.ErrNotFound)
	}
	return nil
}
