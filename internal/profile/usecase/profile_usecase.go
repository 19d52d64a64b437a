package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"devconnector-backend/internal/ownership"
	"devconnector-backend/internal/profile/domain"
	"devconnector-backend/internal/profile/dto"
	"devconnector-backend/internal/profile/repository"
	"devconnector-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoProfile           = apperror.NotFound(http.StatusBadRequest, "No profile exists for this user")
	ErrProfileNotFound     = apperror.NotFound(http.StatusBadRequest, "Profile not found")
	ErrExperienceNotFound  = apperror.NotFound(http.StatusNotFound, "Experience not found")
	ErrEducationNotFound   = apperror.NotFound(http.StatusNotFound, "Education not found")
	ErrNoGitHubProfile     = apperror.Upstream("No Github profile for this user", nil)
	errGitHubNotConfigured = errors.New("github client not configured")
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// profileUsecase implements ProfileUsecase interface
type profileUsecase struct {
	profileRepo repository.ProfileRepository
	accounts    AccountRemover
	github      RepoFetcher
}

// NewProfileUsecase creates a new instance of profileUsecase
func NewProfileUsecase(profileRepo repository.ProfileRepository, accounts AccountRemover, github RepoFetcher) ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		accounts:    accounts,
		github:      github,
	}
}

func (u *profileUsecase) GetMine(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.load(ctx, userID, ErrNoProfile)
}

func (u *profileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.load(ctx, userID, ErrProfileNotFound)
}

func (u *profileUsecase) List(ctx context.Context) ([]*domain.Profile, error) {
	profiles, err := u.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	return profiles, nil
}

func (u *profileUsecase) Upsert(ctx context.Context, userID string, req *dto.UpsertProfileRequest) (*domain.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	creating := profile == nil
	if creating {
		profile = &domain.Profile{UserID: userID}
	}

	setIfPresent(&profile.Company, req.Company)
	setIfPresent(&profile.Website, req.Website)
	setIfPresent(&profile.Location, req.Location)
	setIfPresent(&profile.Bio, req.Bio)
	setIfPresent(&profile.Status, req.Status)
	setIfPresent(&profile.GitHubUsername, req.GitHubUsername)
	if req.Skills != "" {
		profile.Skills = splitSkills(req.Skills)
	}
	profile.Social = domain.Social{
		YouTube:   req.YouTube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		LinkedIn:  req.LinkedIn,
		Instagram: req.Instagram,
	}

	if creating {
		err = u.profileRepo.Create(ctx, profile)
	} else {
		err = u.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return u.GetMine(ctx, userID)
}

// DeleteAccount is two separate writes; a failure after the first leaves the account without a profile.
func (u *profileUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if err := u.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	if err := u.accounts.DeleteUser(ctx, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("[Profile] profile removed but user delete failed")
		return err
	}
	log.Info().Str("user_id", userID).Msg("[Profile] account removed")
	return nil
}

func (u *profileUsecase) AddExperience(ctx context.Context, userID string, req *dto.ExperienceRequest) (*domain.Profile, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	profile, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Experience = profile.Experience.Prepend(domain.Experience{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})

	return u.save(ctx, profile)
}

func (u *profileUsecase) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	profile, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining, err := ownership.RemoveByID(profile.Experience, experienceID)
	if err != nil {
		return nil, ErrExperienceNotFound
	}
	profile.Experience = remaining

	return u.save(ctx, profile)
}

func (u *profileUsecase) AddEducation(ctx context.Context, userID string, req *dto.EducationRequest) (*domain.Profile, error) {
	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	profile, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Education = profile.Education.Prepend(domain.Education{
		ID:           uuid.New().String(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})

	return u.save(ctx, profile)
}

func (u *profileUsecase) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	profile, err := u.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining, err := ownership.RemoveByID(profile.Education, educationID)
	if err != nil {
		return nil, ErrEducationNotFound
	}
	profile.Education = remaining

	return u.save(ctx, profile)
}

func (u *profileUsecase) GitHubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	if u.github == nil {
		return nil, apperror.Upstream(ErrNoGitHubProfile.Message, errGitHubNotConfigured)
	}

	repos, err := u.github.UserRepos(ctx, username)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("[Profile] github lookup failed")
		return nil, apperror.Upstream(ErrNoGitHubProfile.Message, err)
	}
	return repos, nil
}

func (u *profileUsecase) load(ctx context.Context, userID string, notFound error) (*domain.Profile, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, notFound
	}
	return profile, nil
}

func (u *profileUsecase) save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func parseRange(from, to string) (time.Time, *time.Time, error) {
	start, err := parseDate(from)
	if err != nil {
		return time.Time{}, nil, apperror.Validation([]apperror.FieldError{{Msg: "From date is invalid", Param: "from"}})
	}
	if to == "" {
		return start, nil, nil
	}
	end, err := parseDate(to)
	if err != nil {
		return time.Time{}, nil, apperror.Validation([]apperror.FieldError{{Msg: "To date is invalid", Param: "to"}})
	}
	return start, &end, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
