package middleware

import (
	"context"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminTokenHeader carries the management token on every admin request.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken revalidates the presented token against the current admin
// credential set on every request. There are no sessions and no expiry;
// a token stops working the moment its credential changes.
func AdminToken(authService services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(AdminTokenHeader)
			if token == "" {
				return common.SendUnauthorizedError(c)
			}

			user, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return common.SendUnauthorizedError(c)
			}

			ctx := context.WithValue(c.Request().Context(), common.AdminUserKey, user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
