package delivery

import (
	"devconnector-backend/internal/auth/usecase"
	"devconnector-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	TokenHeader = "x-auth-token"
	userIDKey   = "userID"
)

var (
	errNoToken      = apperror.Unauthorized("No token, you are denied!")
	errInvalidToken = apperror.Unauthorized("Your token is invalid")
)

// AuthMiddleware establishes who is asking. It authorizes nothing.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			apperror.Respond(c, errNoToken)
			return
		}

		userID, err := authUsecase.ValidateToken(token)
		if err != nil {
			apperror.Respond(c, errInvalidToken)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity attached by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
