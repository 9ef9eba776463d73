package repositories

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LicenseRepository interface {
	Insert(ctx context.Context, license *models.License) error
	List(ctx context.Context, projectID *uuid.UUID) ([]*models.License, error)
	GetByKey(ctx context.Context, key string) (*models.License, error)
	GetByKeyAndProjectName(ctx context.Context, key, projectName string) (*models.License, error)
	SetActive(ctx context.Context, key string, projectID *uuid.UUID, active bool) (int64, error)
	SetRemarks(ctx context.Context, key string, projectID *uuid.UUID, remarks string) (int64, error)
	Delete(ctx context.Context, key string, projectID *uuid.UUID) (int64, error)
}

type licenseRepo struct {
	db Database
}

func NewLicenseRepo(db Database) LicenseRepository {
	return &licenseRepo{db: db}
}

func (r *licenseRepo) Insert(ctx context.Context, license *models.License) error {
	query := `
		INSERT INTO licenses (id, project_id, license_key, is_active, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, license.ID, license.ProjectID, license.LicenseKey, license.IsActive, license.Remarks)
	if isUniqueViolation(err) {
		return fmt.Errorf("license key %q in project %s: %w", license.LicenseKey, license.ProjectID, common.ErrConflict)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("project %s: %w", license.ProjectID, common.ErrNotFound)
	}
	return err
}

func (r *licenseRepo) List(ctx context.Context, projectID *uuid.UUID) ([]*models.License, error) {
	query := `
		SELECT id, project_id, license_key, is_active, remarks, created_at
		FROM licenses
	`
	var args []interface{}
	if projectID != nil {
		query += ` WHERE project_id = $1`
		args = append(args, *projectID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []*models.License
	for rows.Next() {
		license := &models.License{}
		if err := rows.Scan(&license.ID, &license.ProjectID, &license.LicenseKey, &license.IsActive, &license.Remarks, &license.CreatedAt); err != nil {
			return nil, err
		}
		licenses = append(licenses, license)
	}
	return licenses, rows.Err()
}

// GetByKey resolves a license by key value alone, across all projects. The
// same key string may exist under several projects; the oldest row wins so
// repeated lookups stay deterministic.
func (r *licenseRepo) GetByKey(ctx context.Context, key string) (*models.License, error) {
	license := &models.License{}
	query := `
		SELECT id, project_id, license_key, is_active, remarks, created_at
		FROM licenses
		WHERE license_key = $1
		ORDER BY created_at
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, key).Scan(&license.ID, &license.ProjectID, &license.LicenseKey, &license.IsActive, &license.Remarks, &license.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("license key %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return license, nil
}

func (r *licenseRepo) GetByKeyAndProjectName(ctx context.Context, key, projectName string) (*models.License, error) {
	license := &models.License{}
	query := `
		SELECT l.id, l.project_id, l.license_key, l.is_active, l.remarks, l.created_at
		FROM licenses l
		JOIN projects p ON l.project_id = p.id
		WHERE l.license_key = $1 AND p.name = $2
	`
	err := r.db.QueryRow(ctx, query, key, projectName).Scan(&license.ID, &license.ProjectID, &license.LicenseKey, &license.IsActive, &license.Remarks, &license.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("license key %q in project %q: %w", key, projectName, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return license, nil
}

func (r *licenseRepo) SetActive(ctx context.Context, key string, projectID *uuid.UUID, active bool) (int64, error) {
	if projectID != nil {
		tag, err := r.db.Exec(ctx, `UPDATE licenses SET is_active = $1 WHERE license_key = $2 AND project_id = $3`, active, key, *projectID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, `UPDATE licenses SET is_active = $1 WHERE license_key = $2`, active, key)
	return tag.RowsAffected(), err
}

func (r *licenseRepo) SetRemarks(ctx context.Context, key string, projectID *uuid.UUID, remarks string) (int64, error) {
	if projectID != nil {
		tag, err := r.db.Exec(ctx, `UPDATE licenses SET remarks = $1 WHERE license_key = $2 AND project_id = $3`, remarks, key, *projectID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, `UPDATE licenses SET remarks = $1 WHERE license_key = $2`, remarks, key)
	return tag.RowsAffected(), err
}

func (r *licenseRepo) Delete(ctx context.Context, key string, projectID *uuid.UUID) (int64, error) {
	if projectID != nil {
		tag, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE license_key = $1 AND project_id = $2`, key, *projectID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE license_key = $1`, key)
	return tag.RowsAffected(), err
}
