package delivery

import (
	"net/http"

	authdelivery "devconnector-backend/internal/auth/delivery"
	"devconnector-backend/internal/profile/dto"
	"devconnector-backend/internal/profile/usecase"
	"devconnector-backend/pkg/apperror"
	"devconnector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetMine returns the authenticated user's profile
// GET /api/profile/me
func (h *ProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.profileUsecase.GetMine(c.Request.Context(), authdelivery.UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Upsert creates or updates the authenticated user's profile
// POST /api/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if err := validation.Bind(c, &req, dto.UpsertProfileMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	profile, err := h.profileUsecase.Upsert(c.Request.Context(), authdelivery.UserID(c), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// List returns every profile
// GET /api/profile
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUsecase.List(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByUserID returns the profile of any user
// GET /api/profile/user/:user_id
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileUsecase.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the profile and the user
// DELETE /api/profile
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.profileUsecase.DeleteAccount(c.Request.Context(), authdelivery.UserID(c)); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User is removed!"})
}

// AddExperience prepends an experience entry
// PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if err := validation.Bind(c, &req, dto.ExperienceMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	profile, err := h.profileUsecase.AddExperience(c.Request.Context(), authdelivery.UserID(c), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes an experience entry by id
// DELETE /api/profile/experience/:exp_id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	profile, err := h.profileUsecase.RemoveExperience(c.Request.Context(), authdelivery.UserID(c), c.Param("exp_id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry
// PUT /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req dto.EducationRequest
	if err := validation.Bind(c, &req, dto.EducationMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	profile, err := h.profileUsecase.AddEducation(c.Request.Context(), authdelivery.UserID(c), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes an education entry by id
// DELETE /api/profile/education/:edu_id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	profile, err := h.profileUsecase.RemoveEducation(c.Request.Context(), authdelivery.UserID(c), c.Param("edu_id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GitHubRepos proxies the latest repositories of a GitHub user
// GET /api/profile/github/:username
func (h *ProfileHandler) GitHubRepos(c *gin.Context) {
	repos, err := h.profileUsecase.GitHubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}
