package api

import (
	"net/http"

	authUsecase "devconnector-backend/internal/auth/usecase"
	postUsecase "devconnector-backend/internal/post/usecase"
	profileUsecase "devconnector-backend/internal/profile/usecase"
	"devconnector-backend/pkg/config"
	"devconnector-backend/pkg/github"
	"devconnector-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	profileUsecase profileUsecase.ProfileUsecase
	postUsecase    postUsecase.PostUsecase
	config         *config.Config
}

func NewHandler(cfg *config.Config, repos Repositories) *Handler {
	tokens := authUsecase.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authUc := authUsecase.NewAuthUsecase(repos.Users, tokens)

	githubClient := github.NewClient(cfg)
	log.Info().Str("base_url", cfg.GitHubAPIURL).Bool("token", cfg.GitHubToken != "").Msg("GitHub client initialized")

	directory := &userDirectory{users: repos.Users}

	return &Handler{
		authUsecase:    authUc,
		profileUsecase: profileUsecase.NewProfileUsecase(repos.Profiles, authUc, githubClient),
		postUsecase:    postUsecase.NewPostUsecase(repos.Posts, directory),
		config:         cfg,
	}
}

// Engine builds the gin engine with middleware and every route mounted.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(h.config.GinMode)

	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, x-auth-token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.profileUsecase, h.postUsecase)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
