package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"keyhub/internal/common"
	"keyhub/internal/models"
	"keyhub/internal/repositories"
)

// AuthService issues and validates admin tokens. The token is a shared
// secret derived deterministically from the stored credential, so no session
// state exists: every request is re-checked against the current admin set,
// and changing a password invalidates every token previously issued for it.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.AdminUser, error)
	Token(username, password string) string
}

type authService struct {
	adminRepo repositories.AdminRepository
	salt      string
}

func NewAuthService(adminRepo repositories.AdminRepository, salt string) AuthService {
	return &authService{adminRepo: adminRepo, salt: salt}
}

// Token derives the admin token for a credential pair: lowercase hex
// SHA-256 over "username:password:salt".
func (s *authService) Token(username, password string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", username, password, s.salt)))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}
	if _, err := s.adminRepo.GetByCredentials(ctx, username, password); err != nil {
		return "", err
	}
	return s.Token(username, password), nil
}

// Authenticate scans all admin users and accepts the token if it matches any
// user's expected token. Linear in the admin count, which stays small.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.AdminUser, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}
	users, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if token == s.Token(user.Username, user.Password) {
			return user, nil
		}
	}
	return nil, common.ErrUnauthorized
}
