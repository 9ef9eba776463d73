package common

import (
	"context"

	"keyhub/internal/models"
)

// AdminFromContext returns the admin stored by the token middleware, or nil
// on requests that never passed through it.
func AdminFromContext(ctx context.Context) *models.AdminUser {
	user, _ := ctx.Value(AdminUserKey).(*models.AdminUser)
	return user
}
