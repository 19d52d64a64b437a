package usecase

import (
	"context"
	"errors"
	"net/http"

	authdomain "devconnector-backend/internal/auth/domain"
	authdto "devconnector-backend/internal/auth/dto"
	"devconnector-backend/internal/auth/repository"
	"devconnector-backend/pkg/apperror"
	"devconnector-backend/pkg/gravatar"

	"github.com/rs/zerolog/log"
)

var (
	ErrUserExists         = apperror.Listed(apperror.KindDuplicate, http.StatusBadRequest, "User already exists")
	ErrInvalidCredentials = apperror.Listed(apperror.KindUnauthorized, http.StatusBadRequest, "Check your credentials!")
	ErrUserNotFound       = apperror.NotFound(http.StatusNotFound, "User not found")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Avatar:   gravatar.URL(req.Email),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, apperror.Internal(err)
	}

	log.Info().Str("user_id", user.ID).Msg("[Auth] user registered")
	return u.issue(user.ID)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.issue(user.ID)
}

func (u *authUsecase) ValidateToken(token string) (string, error) {
	return u.tokens.Verify(token)
}

func (u *authUsecase) GetUser(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) issue(userID string) (*authdto.TokenResponse, error) {
	token, err := u.tokens.Issue(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &authdto.TokenResponse{Token: token}, nil
}
