package apperror

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Respond writes err to the client and aborts the chain.
func Respond(c *gin.Context, err error) {
	appErr := From(err)

	if appErr.Kind == KindInternal {
		log.Error().Err(appErr.Err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	if len(appErr.Fields) > 0 {
		c.AbortWithStatusJSON(appErr.Status, gin.H{"errors": appErr.Fields})
		return
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{"msg": appErr.Message})
}
