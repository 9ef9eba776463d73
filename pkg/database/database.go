package database

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id uuid PRIMARY KEY,
		name text UNIQUE NOT NULL,
		description text NOT NULL DEFAULT '',
		is_default boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS licenses (
		id uuid PRIMARY KEY,
		project_id uuid NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		license_key text NOT NULL,
		is_active boolean NOT NULL DEFAULT true,
		remarks text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT NOW(),
		UNIQUE (project_id, license_key)
	)`,
	`CREATE TABLE IF NOT EXISTS machine_bindings (
		id uuid PRIMARY KEY,
		license_id uuid NOT NULL REFERENCES licenses (id) ON DELETE CASCADE,
		key_value text NOT NULL,
		machine_id text NOT NULL,
		remarks text NOT NULL DEFAULT '',
		bound_at timestamptz NOT NULL DEFAULT NOW(),
		UNIQUE (key_value, machine_id)
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id uuid PRIMARY KEY,
		username text UNIQUE NOT NULL,
		password text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the four tables on first startup. Foreign keys
// cascade project -> license -> machine binding.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const (
	defaultProjectName = "Default Project"
	defaultProjectDesc = "System default project"
	defaultAdminUser   = "admin"
	defaultAdminPass   = "admin123"
)

// Seed creates the default project and default admin on first startup.
// Both are idempotent across restarts and concurrent instances.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var defaults int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE is_default`).Scan(&defaults); err != nil {
		return err
	}
	if defaults == 0 {
		_, err := pool.Exec(ctx, `
			INSERT INTO projects (id, name, description, is_default, created_at)
			VALUES ($1, $2, $3, true, NOW())
			ON CONFLICT (name) DO NOTHING
		`, uuid.New(), defaultProjectName, defaultProjectDesc)
		if err != nil {
			return err
		}
		log.Printf("Seeded default project %q", defaultProjectName)
	}

	var admins int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users WHERE username = $1`, defaultAdminUser).Scan(&admins); err != nil {
		return err
	}
	if admins == 0 {
		_, err := pool.Exec(ctx, `
			INSERT INTO admin_users (id, username, password, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (username) DO NOTHING
		`, uuid.New(), defaultAdminUser, defaultAdminPass)
		if err != nil {
			return err
		}
		log.Printf("Seeded default admin %q", defaultAdminUser)
	}
	return nil
}
