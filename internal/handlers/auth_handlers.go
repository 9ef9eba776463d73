package handlers

import (
	"net/http"

	"keyhub/internal/common"
	"keyhub/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles admin login
type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the derived admin token
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login exchanges admin credentials for a token. The token is deterministic
// for a credential pair; no session is created.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Username == "" || req.Password == "" {
		return common.SendValidationError(c, "credentials", "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return common.SendError(c, err, "Invalid username or password")
	}

	return c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}
