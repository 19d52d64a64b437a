package delivery

import (
	"net/http"

	authdto "devconnector-backend/internal/auth/dto"
	"devconnector-backend/internal/auth/usecase"
	"devconnector-backend/pkg/apperror"
	"devconnector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates an account and returns a token
// POST /api/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := validation.Bind(c, &req, authdto.RegisterMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login exchanges credentials for a token
// POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := validation.Bind(c, &req, authdto.LoginMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// GET /api/auth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Request.Context(), UserID(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
