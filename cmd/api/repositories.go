package api

import (
	"context"

	authRepo "devconnector-backend/internal/auth/repository"
	postdomain "devconnector-backend/internal/post/domain"
	postRepo "devconnector-backend/internal/post/repository"
	profiledomain "devconnector-backend/internal/profile/domain"
	profileRepo "devconnector-backend/internal/profile/repository"

	"gorm.io/gorm"
)

// Repositories bundles the stores behind one storage driver.
type Repositories struct {
	Users    authRepo.UserRepository
	Profiles profileRepo.ProfileRepository
	Posts    postRepo.PostRepository
}

// NewPostgresRepositories builds GORM-backed stores.
func NewPostgresRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    authRepo.NewUserRepository(db),
		Profiles: profileRepo.NewProfileRepository(db),
		Posts:    postRepo.NewPostRepository(db),
	}
}

// NewMemoryRepositories builds process-local stores; data is lost on restart.
func NewMemoryRepositories() Repositories {
	users := authRepo.NewMemoryUserRepository()
	return Repositories{
		Users:    users,
		Profiles: profileRepo.NewMemoryProfileRepository(&userDirectory{users: users}),
		Posts:    postRepo.NewMemoryPostRepository(),
	}
}

// userDirectory adapts UserRepository to the profile OwnerFinder and post AuthorFinder interfaces
type userDirectory struct {
	users authRepo.UserRepository
}

func (d *userDirectory) FindOwner(ctx context.Context, userID string) (*profiledomain.Owner, error) {
	user, err := d.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return &profiledomain.Owner{ID: user.ID, Name: user.Name, Avatar: user.Avatar}, nil
}

func (d *userDirectory) FindAuthor(ctx context.Context, userID string) (*postdomain.Author, error) {
	user, err := d.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return &postdomain.Author{ID: user.ID, Name: user.Name, Avatar: user.Avatar}, nil
}
