package repositories

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/jackc/pgx/v5"
)

type AdminRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error)
	List(ctx context.Context) ([]*models.AdminUser, error)
	Count(ctx context.Context) (int, error)
	UpdateUsername(ctx context.Context, username, newUsername string) error
	UpdatePassword(ctx context.Context, username, newPassword string) (int64, error)
	Delete(ctx context.Context, username string) (int64, error)
}

type adminRepo struct {
	db Database
}

func NewAdminRepo(db Database) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, username, password, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Password)
	if isUniqueViolation(err) {
		return fmt.Errorf("admin %q: %w", user.Username, common.ErrConflict)
	}
	return err
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	query := `
		SELECT id, username, password, created_at
		FROM admin_users
		WHERE username = $1
	`
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("admin %q: %w", username, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *adminRepo) GetByCredentials(ctx context.Context, username, password string) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	query := `
		SELECT id, username, password, created_at
		FROM admin_users
		WHERE username = $1 AND password = $2
	`
	err := r.db.QueryRow(ctx, query, username, password).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, common.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *adminRepo) List(ctx context.Context) ([]*models.AdminUser, error) {
	query := `
		SELECT id, username, password, created_at
		FROM admin_users
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.AdminUser
	for rows.Next() {
		user := &models.AdminUser{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *adminRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *adminRepo) UpdateUsername(ctx context.Context, username, newUsername string) error {
	query := `UPDATE admin_users SET username = $1 WHERE username = $2`
	_, err := r.db.Exec(ctx, query, newUsername, username)
	if isUniqueViolation(err) {
		return fmt.Errorf("admin %q: %w", newUsername, common.ErrConflict)
	}
	return err
}

func (r *adminRepo) UpdatePassword(ctx context.Context, username, newPassword string) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE admin_users SET password = $1 WHERE username = $2`, newPassword, username)
	return tag.RowsAffected(), err
}

func (r *adminRepo) Delete(ctx context.Context, username string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_users WHERE username = $1`, username)
	return tag.RowsAffected(), err
}
