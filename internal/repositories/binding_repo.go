package repositories

import (
	"context"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/google/uuid"
)

type BindingRepository interface {
	Insert(ctx context.Context, binding *models.MachineBinding) error
	Exists(ctx context.Context, key, machineID string) (bool, error)
	ListByKey(ctx context.Context, key string) ([]*models.MachineBinding, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	SetRemarks(ctx context.Context, id uuid.UUID, remarks string) (int64, error)
}

type bindingRepo struct {
	db Database
}

func NewBindingRepo(db Database) BindingRepository {
	return &bindingRepo{db: db}
}

func (r *bindingRepo) Insert(ctx context.Context, binding *models.MachineBinding) error {
	query := `
		INSERT INTO machine_bindings (id, license_id, key_value, machine_id, remarks, bound_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.Exec(ctx, query, binding.ID, binding.LicenseID, binding.KeyValue, binding.MachineID, binding.Remarks)
	if isUniqueViolation(err) {
		return fmt.Errorf("machine %q already bound to key %q: %w", binding.MachineID, binding.KeyValue, common.ErrConflict)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("license %s: %w", binding.LicenseID, common.ErrNotFound)
	}
	return err
}

func (r *bindingRepo) Exists(ctx context.Context, key, machineID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM machine_bindings WHERE key_value = $1 AND machine_id = $2`
	if err := r.db.QueryRow(ctx, query, key, machineID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bindingRepo) ListByKey(ctx context.Context, key string) ([]*models.MachineBinding, error) {
	query := `
		SELECT id, license_id, key_value, machine_id, remarks, bound_at
		FROM machine_bindings
		WHERE key_value = $1
		ORDER BY bound_at DESC
	`
	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []*models.MachineBinding
	for rows.Next() {
		binding := &models.MachineBinding{}
		if err := rows.Scan(&binding.ID, &binding.LicenseID, &binding.KeyValue, &binding.MachineID, &binding.Remarks, &binding.BoundAt); err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}
	return bindings, rows.Err()
}

func (r *bindingRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM machine_bindings WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

func (r *bindingRepo) SetRemarks(ctx context.Context, id uuid.UUID, remarks string) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE machine_bindings SET remarks = $1 WHERE id = $2`, remarks, id)
	return tag.RowsAffected(), err
}
