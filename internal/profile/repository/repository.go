package repository

import (
	"context"

	"devconnector-backend/internal/profile/domain"
)

// ProfileRepository stores one profile document per user.
type ProfileRepository interface {
	// FindByUserID returns the user's profile with its owner populated, or nil, nil.
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)

	// FindAll returns every profile in creation order.
	FindAll(ctx context.Context) ([]*domain.Profile, error)

	// Create assigns ID and Date and persists a new profile.
	Create(ctx context.Context, profile *domain.Profile) error

	// Update overwrites the stored profile document.
	Update(ctx context.Context, profile *domain.Profile) error

	// DeleteByUserID removes the user's profile if present.
	DeleteByUserID(ctx context.Context, userID string) error
}

// OwnerFinder resolves the user summary attached to profiles held outside the database.
type OwnerFinder interface {
	FindOwner(ctx context.Context, userID string) (*domain.Owner, error)
}
