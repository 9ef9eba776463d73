package models

import (
	"time"

	"github.com/google/uuid"
)

// MachineBinding associates a license key with one machine identity.
// A license may accumulate any number of distinct bindings.
type MachineBinding struct {
	ID        uuid.UUID `json:"id" db:"id"`
	LicenseID uuid.UUID `json:"license_id" db:"license_id"`
	KeyValue  string    `json:"key_value" db:"key_value"`
	MachineID string    `json:"machine_id" db:"machine_id"`
	Remarks   string    `json:"remarks" db:"remarks"`
	BoundAt   time.Time `json:"bound_at" db:"bound_at"`
}
