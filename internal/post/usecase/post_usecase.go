package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"devconnector-backend/internal/ownership"
	"devconnector-backend/internal/post/domain"
	"devconnector-backend/internal/post/repository"
	"devconnector-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrPostNotFound     = apperror.NotFound(http.StatusNotFound, "There is no post for this id")
	ErrNotPostAuthor    = apperror.Forbidden("User not authorized")
	ErrAlreadyLiked     = apperror.New(apperror.KindAlreadyLiked, http.StatusBadRequest, "This post has already been liked")
	ErrNotLiked         = apperror.New(apperror.KindNotLiked, http.StatusBadRequest, "This post has not been liked yet")
	ErrCommentNotFound  = apperror.NotFound(http.StatusNotFound, "Comment not found!")
	ErrNotCommentAuthor = apperror.Forbidden("You are not authorized!")
	ErrAuthorNotFound   = apperror.NotFound(http.StatusNotFound, "User not found")
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
	authors  AuthorFinder
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository, authors AuthorFinder) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		authors:  authors,
	}
}

func (u *postUsecase) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	author, err := u.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:   userID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []domain.Like{},
		Comments: []domain.Comment{},
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}

	log.Info().Str("post_id", post.ID).Str("user_id", userID).Msg("[Post] created")
	return post, nil
}

func (u *postUsecase) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := u.postRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

func (u *postUsecase) Get(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (u *postUsecase) Delete(ctx context.Context, userID, postID string) error {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return err
	}
	if err := ownership.Authorize(post.UserID, userID); err != nil {
		return ErrNotPostAuthor
	}
	if err := u.postRepo.Delete(ctx, postID); err != nil {
		return apperror.Internal(err)
	}

	log.Info().Str("post_id", postID).Str("user_id", userID).Msg("[Post] removed")
	return nil
}

func (u *postUsecase) Like(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if ownership.OwnedBy(post.Likes, userID) {
		return nil, ErrAlreadyLiked
	}

	post.Likes = post.Likes.Prepend(domain.Like{ID: uuid.New().String(), User: userID})
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post.Likes, nil
}

func (u *postUsecase) Unlike(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	remaining, err := ownership.RemoveOwnedBy(post.Likes, userID)
	if err != nil {
		return nil, ErrNotLiked
	}
	post.Likes = remaining
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post.Likes, nil
}

func (u *postUsecase) AddComment(ctx context.Context, userID, postID, text string) ([]domain.Comment, error) {
	author, err := u.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Comments = post.Comments.Prepend(domain.Comment{
		ID:     uuid.New().String(),
		User:   userID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now(),
	})
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post.Comments, nil
}

func (u *postUsecase) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]domain.Comment, error) {
	post, err := u.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	remaining, err := ownership.Remove(post.Comments, commentID, userID)
	switch {
	case errors.Is(err, ownership.ErrNotFound):
		return nil, ErrCommentNotFound
	case errors.Is(err, ownership.ErrForbidden):
		return nil, ErrNotCommentAuthor
	case err != nil:
		return nil, apperror.Internal(err)
	}

	post.Comments = remaining
	if err := u.postRepo.Update(ctx, post); err != nil {
		return nil, apperror.Internal(err)
	}
	return post.Comments, nil
}

func (u *postUsecase) author(ctx context.Context, userID string) (*domain.Author, error) {
	author, err := u.authors.FindAuthor(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}
