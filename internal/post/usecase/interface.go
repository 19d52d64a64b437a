package usecase

import (
	"context"

	"devconnector-backend/internal/post/domain"
)

// PostUsecase defines the feed operations. Every method takes the authenticated user's id.
type PostUsecase interface {
	Create(ctx context.Context, userID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)

	// Delete removes the post if userID is its author.
	Delete(ctx context.Context, userID, postID string) error

	Like(ctx context.Context, userID, postID string) ([]domain.Like, error)
	Unlike(ctx context.Context, userID, postID string) ([]domain.Like, error)

	AddComment(ctx context.Context, userID, postID, text string) ([]domain.Comment, error)

	// RemoveComment removes the comment if userID wrote it.
	RemoveComment(ctx context.Context, userID, postID, commentID string) ([]domain.Comment, error)
}

// AuthorFinder resolves the name and avatar snapshotted onto posts and comments.
type AuthorFinder interface {
	FindAuthor(ctx context.Context, userID string) (*domain.Author, error)
}
