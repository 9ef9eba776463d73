package services

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"
	"keyhub/internal/repositories"

	"github.com/google/uuid"
)

// DefaultAdminUsername is the seeded account. It can never be renamed or
// deleted, even when other admins exist.
const DefaultAdminUsername = "admin"

type AdminService interface {
	List(ctx context.Context) ([]*models.AdminUser, error)
	Create(ctx context.Context, username, password string) (*models.AdminUser, error)
	Delete(ctx context.Context, username string) error
	Rename(ctx context.Context, username, newUsername string) error
	ChangePassword(ctx context.Context, username, newPassword string) error
}

type adminService struct {
	adminRepo repositories.AdminRepository
}

func NewAdminService(adminRepo repositories.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) List(ctx context.Context) ([]*models.AdminUser, error) {
	return s.adminRepo.List(ctx)
}

func (s *adminService) Create(ctx context.Context, username, password string) (*models.AdminUser, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	user := &models.AdminUser{
		ID:       uuid.New(),
		Username: username,
		Password: password,
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) Delete(ctx context.Context, username string) error {
	if username == DefaultAdminUsername {
		return fmt.Errorf("default admin cannot be deleted: %w", common.ErrForbidden)
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	// at least one admin must remain
	if count <= 1 {
		return fmt.Errorf("last admin cannot be deleted: %w", common.ErrForbidden)
	}

	affected, err := s.adminRepo.Delete(ctx, username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("admin %q: %w", username, common.ErrNotFound)
	}
	return nil
}

func (s *adminService) Rename(ctx context.Context, username, newUsername string) error {
	if newUsername == "" {
		return fmt.Errorf("new username is required: %w", common.ErrValidation)
	}
	if username == DefaultAdminUsername {
		return fmt.Errorf("default admin cannot be renamed: %w", common.ErrForbidden)
	}

	if _, err := s.adminRepo.GetByUsername(ctx, username); err != nil {
		return err
	}
	return s.adminRepo.UpdateUsername(ctx, username, newUsername)
}

func (s *adminService) ChangePassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", common.ErrValidation)
	}

	affected, err := s.adminRepo.UpdatePassword(ctx, username, newPassword)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("admin %q: %w", username, common.ErrNotFound)
	}
	return nil
}
