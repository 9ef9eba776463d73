package models

import (
	"time"

	"github.com/google/uuid"
)

type License struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProjectID  uuid.UUID `json:"project_id" db:"project_id"`
	LicenseKey string    `json:"license_key" db:"license_key"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	Remarks    string    `json:"remarks" db:"remarks"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
