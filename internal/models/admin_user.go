package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a management account. The password is an opaque credential
// stored verbatim; it is never serialized in API responses.
type AdminUser struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
