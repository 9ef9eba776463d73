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

// VerifyResult is the decision returned to unauthenticated clients.
type VerifyResult struct {
	Valid       bool   `json:"valid"`
	ProjectName string `json:"project_name,omitempty"`
	NewlyBound  bool   `json:"newly_bound,omitempty"`
}

// VerifyService decides license validity. Two disciplines exist and exactly
// one is routed per deployment: project-scoped (key + project name) or
// machine-bound (key looked up globally, bind-on-first-use).
type VerifyService interface {
	VerifyProject(ctx context.Context, key, projectName string) (*VerifyResult, error)
	VerifyMachine(ctx context.Context, key, machineID string) (*VerifyResult, error)
}

type verifyService struct {
	licenseRepo repositories.LicenseRepository
	projectRepo repositories.ProjectRepository
	bindingRepo repositories.BindingRepository
}

func NewVerifyService(licenseRepo repositories.LicenseRepository, projectRepo repositories.ProjectRepository, bindingRepo repositories.BindingRepository) VerifyService {
	return &verifyService{
		licenseRepo: licenseRepo,
		projectRepo: projectRepo,
		bindingRepo: bindingRepo,
	}
}

func (s *verifyService) VerifyProject(ctx context.Context, key, projectName string) (*VerifyResult, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required: %w", common.ErrValidation)
	}
	if projectName == "" {
		return nil, fmt.Errorf("project_name is required: %w", common.ErrValidation)
	}

	license, err := s.licenseRepo.GetByKeyAndProjectName(ctx, key, projectName)
	if err != nil {
		return nil, err
	}
	if !license.IsActive {
		return nil, common.ErrDisabled
	}
	return &VerifyResult{Valid: true, ProjectName: projectName}, nil
}

// VerifyMachine accepts every new machine identity presented against a
// valid, active key; there is no binding cap. A concurrent first-use race is
// settled by the store's unique constraint and reported as already bound.
func (s *verifyService) VerifyMachine(ctx context.Context, key, machineID string) (*VerifyResult, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required: %w", common.ErrValidation)
	}
	if machineID == "" {
		return nil, fmt.Errorf("machine_id is required: %w", common.ErrValidation)
	}

	license, err := s.licenseRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !license.IsActive {
		return nil, common.ErrDisabled
	}

	project, err := s.projectRepo.GetByID(ctx, license.ProjectID)
	if err != nil {
		return nil, err
	}

	bound, err := s.bindingRepo.Exists(ctx, key, machineID)
	if err != nil {
		return nil, err
	}
	if bound {
		return &VerifyResult{Valid: true, ProjectName: project.Name}, nil
	}

	binding := &models.MachineBinding{
		ID:        uuid.New(),
		LicenseID: license.ID,
		KeyValue:  key,
		MachineID: machineID,
	}
	if err := s.bindingRepo.Insert(ctx, binding); err != nil {
		if errors.Is(err, common.ErrConflict) {
			// lost the race to another request binding the same pair
			return &VerifyResult{Valid: true, ProjectName: project.Name}, nil
		}
		return nil, fmt.Errorf("binding machine %q: %w", machineID, err)
	}
	return &VerifyResult{Valid: true, ProjectName: project.Name, NewlyBound: true}, nil
}
