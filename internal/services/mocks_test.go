package services

import (
	"context"

	"keyhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByName(ctx context.Context, name string) (*models.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) Insert(ctx context.Context, license *models.License) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

func (m *MockLicenseRepository) List(ctx context.Context, projectID *uuid.UUID) ([]*models.License, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.License), args.Error(1)
}

func (m *MockLicenseRepository) GetByKey(ctx context.Context, key string) (*models.License, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.License), args.Error(1)
}

func (m *MockLicenseRepository) GetByKeyAndProjectName(ctx context.Context, key, projectName string) (*models.License, error) {
	args := m.Called(ctx, key, projectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.License), args.Error(1)
}

func (m *MockLicenseRepository) SetActive(ctx context.Context, key string, projectID *uuid.UUID, active bool) (int64, error) {
	args := m.Called(ctx, key, projectID, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLicenseRepository) SetRemarks(ctx context.Context, key string, projectID *uuid.UUID, remarks string) (int64, error) {
	args := m.Called(ctx, key, projectID, remarks)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLicenseRepository) Delete(ctx context.Context, key string, projectID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, key, projectID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBindingRepository struct {
	mock.Mock
}

func (m *MockBindingRepository) Insert(ctx context.Context, binding *models.MachineBinding) error {
	args := m.Called(ctx, binding)
	return args.Error(0)
}

func (m *MockBindingRepository) Exists(ctx context.Context, key, machineID string) (bool, error) {
	args := m.Called(ctx, key, machineID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBindingRepository) ListByKey(ctx context.Context, key string) ([]*models.MachineBinding, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MachineBinding), args.Error(1)
}

func (m *MockBindingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBindingRepository) SetRemarks(ctx context.Context, id uuid.UUID, remarks string) (int64, error) {
	args := m.Called(ctx, id, remarks)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, user *models.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) GetByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminRepository) UpdateUsername(ctx context.Context, username, newUsername string) error {
	args := m.Called(ctx, username, newUsername)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, username, newPassword string) (int64, error) {
	args := m.Called(ctx, username, newPassword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) Delete(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}
