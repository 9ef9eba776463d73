package repositories

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByName(ctx context.Context, name string) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Project, error)
}

type projectRepo struct {
	db Database
}

func NewProjectRepo(db Database) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, name, description, is_default, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(ctx, query, project.ID, project.Name, project.Description, project.IsDefault)
	if isUniqueViolation(err) {
		return fmt.Errorf("project %q: %w", project.Name, common.ErrConflict)
	}
	return err
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project := &models.Project{}
	query := `
		SELECT id, name, description, is_default, created_at
		FROM projects
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&project.ID, &project.Name, &project.Description, &project.IsDefault, &project.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) GetByName(ctx context.Context, name string) (*models.Project, error) {
	project := &models.Project{}
	query := `
		SELECT id, name, description, is_default, created_at
		FROM projects
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&project.ID, &project.Name, &project.Description, &project.IsDefault, &project.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, project.Name, project.Description, project.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("project %q: %w", project.Name, common.ErrConflict)
	}
	return err
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *projectRepo) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, name, description, is_default, created_at
		FROM projects
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.IsDefault, &project.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
