package services

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"
	"keyhub/internal/repositories"

	"github.com/google/uuid"
)

type BindingService interface {
	ListByKey(ctx context.Context, key string) ([]*models.MachineBinding, error)
	Unbind(ctx context.Context, id uuid.UUID) error
	SetRemarks(ctx context.Context, id uuid.UUID, remarks string) error
}

type bindingService struct {
	bindingRepo repositories.BindingRepository
}

func NewBindingService(bindingRepo repositories.BindingRepository) BindingService {
	return &bindingService{bindingRepo: bindingRepo}
}

func (s *bindingService) ListByKey(ctx context.Context, key string) ([]*models.MachineBinding, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required: %w", common.ErrValidation)
	}
	return s.bindingRepo.ListByKey(ctx, key)
}

func (s *bindingService) Unbind(ctx context.Context, id uuid.UUID) error {
	affected, err := s.bindingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("binding %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (s *bindingService) SetRemarks(ctx context.Context, id uuid.UUID, remarks string) error {
	affected, err := s.bindingRepo.SetRemarks(ctx, id, remarks)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("binding %s: %w", id, common.ErrNotFound)
	}
	return nil
}
