package usecase

import (
	"context"
	"encoding/json"

	"devconnector-backend/internal/profile/domain"
	"devconnector-backend/internal/profile/dto"
)

// ProfileUsecase defines the interface for profile business logic
type ProfileUsecase interface {
	GetMine(ctx context.Context, userID string) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)

	// Upsert creates the caller's profile or updates the fields present in req.
	Upsert(ctx context.Context, userID string, req *dto.UpsertProfileRequest) (*domain.Profile, error)

	// DeleteAccount removes the caller's profile and then the account itself.
	DeleteAccount(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, req *dto.ExperienceRequest) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, req *dto.EducationRequest) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error)

	// GitHubRepos returns the raw repository listing for a GitHub user.
	GitHubRepos(ctx context.Context, username string) (json.RawMessage, error)
}

// AccountRemover deletes the user record behind a profile.
type AccountRemover interface {
	DeleteUser(ctx context.Context, userID string) error
}

// RepoFetcher lists a GitHub user's repositories.
type RepoFetcher interface {
	UserRepos(ctx context.Context, username string) (json.RawMessage, error)
}
