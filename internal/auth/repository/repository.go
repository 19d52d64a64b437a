package repository

import (
	"context"
	"errors"

	authdomain "devconnector-backend/internal/auth/domain"
)

// ErrEmailTaken is returned by Create when another account holds the email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository is the credential store.
type UserRepository interface {
	// Create assigns ID and Date and persists the user.
	Create(ctx context.Context, user *authdomain.User) error

	// FindByEmail returns nil, nil when no account uses the email.
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)

	// FindByID returns nil, nil when the id is unknown.
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// Delete removes the user; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
