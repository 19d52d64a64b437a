package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"devconnector-backend/internal/profile/domain"
	"devconnector-backend/internal/profile/dto"
	"devconnector-backend/internal/profile/repository"
	"devconnector-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	deleted []string
	err     error
}

func (f *fakeAccounts) DeleteUser(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeAccounts) FindOwner(_ context.Context, userID string) (*domain.Owner, error) {
	return &domain.Owner{ID: userID, Name: "name-" + userID, Avatar: "avatar-" + userID}, nil
}

type fakeGitHub struct {
	body json.RawMessage
	err  error
}

func (f fakeGitHub) UserRepos(context.Context, string) (json.RawMessage, error) {
	return f.body, f.err
}

func newTestUsecase(gh RepoFetcher) (ProfileUsecase, *fakeAccounts) {
	accounts := &fakeAccounts{}
	repo := repository.NewMemoryProfileRepository(accounts)
	return NewProfileUsecase(repo, accounts, gh), accounts
}

func baseRequest() *dto.UpsertProfileRequest {
	return &dto.UpsertProfileRequest{
		Company: "Acme",
		Status:  "Developer",
		Skills:  "go, sql ,  docker",
		Twitter: "https://twitter.com/a",
	}
}

func TestGetMineWithoutProfile(t *testing.T) {
	uc, _ := newTestUsecase(nil)

	_, err := uc.GetMine(context.Background(), "u1")
	require.ErrorIs(t, err, ErrNoProfile)
	assert.Equal(t, http.StatusBadRequest, apperror.From(err).Status)
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)

	created, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql", "docker"}, []string(created.Skills))
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, "https://twitter.com/a", created.Social.Twitter)
	require.NotNil(t, created.User)
	assert.Equal(t, "name-u1", created.User.Name)

	updated, err := uc.Upsert(ctx, "u1", &dto.UpsertProfileRequest{
		Status:  "Senior Developer",
		Skills:  "rust",
		YouTube: "https://youtube.com/a",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, "Acme", updated.Company, "absent fields keep their value")
	assert.Equal(t, "Senior Developer", updated.Status)
	assert.Equal(t, []string{"rust"}, []string(updated.Skills))
	assert.Equal(t, domain.Social{YouTube: "https://youtube.com/a"}, updated.Social, "social links are replaced as a group")

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetByUserID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)

	_, err := uc.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)

	got, err := uc.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Developer", got.Status)
}

func TestExperienceRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)
	_, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)

	withFirst, err := uc.AddExperience(ctx, "u1", &dto.ExperienceRequest{Title: "Dev", Company: "Acme", From: "2019-01-01"})
	require.NoError(t, err)
	before := withFirst.Experience.Clone()

	added, err := uc.AddExperience(ctx, "u1", &dto.ExperienceRequest{
		Title: "Lead", Company: "Initech", From: "2021-03-01T00:00:00Z", To: "2022-01-01", Description: "ran things",
	})
	require.NoError(t, err)
	require.Len(t, added.Experience, 2)
	newest := added.Experience[0]
	assert.Equal(t, "Lead", newest.Title, "entries are prepended")
	require.NotNil(t, newest.To)
	assert.Equal(t, 2022, newest.To.Year())

	removed, err := uc.RemoveExperience(ctx, "u1", newest.ID)
	require.NoError(t, err)
	assert.Equal(t, before, removed.Experience)

	stored, err := uc.GetMine(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before, stored.Experience)
}

func TestRemoveUnknownExperience(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)
	_, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)
	_, err = uc.AddExperience(ctx, "u1", &dto.ExperienceRequest{Title: "Dev", Company: "Acme", From: "2019-01-01"})
	require.NoError(t, err)

	_, err = uc.RemoveExperience(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrExperienceNotFound)

	stored, err := uc.GetMine(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, stored.Experience, 1, "nothing is removed for an unknown id")
}

func TestExperienceRequiresProfileAndValidDate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)

	_, err := uc.AddExperience(ctx, "u1", &dto.ExperienceRequest{Title: "Dev", Company: "Acme", From: "2019-01-01"})
	assert.ErrorIs(t, err, ErrNoProfile)

	_, err = uc.AddExperience(ctx, "u1", &dto.ExperienceRequest{Title: "Dev", Company: "Acme", From: "last spring"})
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "from", appErr.Fields[0].Param)
}

func TestEducationRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUsecase(nil)
	_, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)

	added, err := uc.AddEducation(ctx, "u1", &dto.EducationRequest{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2010-09-01", Current: true,
	})
	require.NoError(t, err)
	require.Len(t, added.Education, 1)
	assert.True(t, added.Education[0].Current)

	removed, err := uc.RemoveEducation(ctx, "u1", added.Education[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Education)

	_, err = uc.RemoveEducation(ctx, "u1", added.Education[0].ID)
	assert.ErrorIs(t, err, ErrEducationNotFound)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	uc, accounts := newTestUsecase(nil)
	_, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAccount(ctx, "u1"))
	assert.Equal(t, []string{"u1"}, accounts.deleted)

	_, err = uc.GetMine(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestDeleteAccountUserFailureKeepsProfileGone(t *testing.T) {
	ctx := context.Background()
	uc, accounts := newTestUsecase(nil)
	_, err := uc.Upsert(ctx, "u1", baseRequest())
	require.NoError(t, err)

	accounts.err = apperror.Internal(errors.New("db down"))
	err = uc.DeleteAccount(ctx, "u1")
	assert.Equal(t, apperror.KindInternal, apperror.From(err).Kind)

	_, err = uc.GetMine(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoProfile, "the two deletes are not transactional")
}

func TestGitHubRepos(t *testing.T) {
	ctx := context.Background()

	ok, _ := newTestUsecase(fakeGitHub{body: json.RawMessage(`[{"name":"repo"}]`)})
	repos, err := ok.GitHubRepos(ctx, "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"repo"}]`, string(repos))

	failing, _ := newTestUsecase(fakeGitHub{err: errors.New("status 404")})
	_, err = failing.GitHubRepos(ctx, "ghost")
	require.ErrorIs(t, err, ErrNoGitHubProfile)
	assert.Equal(t, http.StatusNotFound, apperror.From(err).Status)

	unconfigured, _ := newTestUsecase(nil)
	_, err = unconfigured.GitHubRepos(ctx, "octocat")
	assert.ErrorIs(t, err, ErrNoGitHubProfile)
}
