package repository

import (
	"context"

	"devconnector-backend/internal/post/domain"
)

type PostRepository interface {
	// FindByID returns the post or nil, nil.
	FindByID(ctx context.Context, id string) (*domain.Post, error)

	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)

	// Create assigns ID and Date and persists a new post.
	Create(ctx context.Context, post *domain.Post) error

	// Update overwrites the stored post document, likes and comments included.
	Update(ctx context.Context, post *domain.Post) error

	Delete(ctx context.Context, id string) error
}
