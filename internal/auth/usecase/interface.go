package usecase

import (
	"context"

	authdomain "devconnector-backend/internal/auth/domain"
	authdto "devconnector-backend/internal/auth/dto"
)

// AuthUsecase defines registration, login and identity lookups.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken resolves a token to the user id it was issued for.
	ValidateToken(token string) (string, error)

	// GetUser returns the account without its password hash.
	GetUser(ctx context.Context, userID string) (*authdomain.User, error)

	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, userID string) error
}
