package api

import (
	"net/http"

	"devconnector-backend/internal/auth/delivery"
	authUsecase "devconnector-backend/internal/auth/usecase"
	postDelivery "devconnector-backend/internal/post/delivery"
	postUsecase "devconnector-backend/internal/post/usecase"
	profileDelivery "devconnector-backend/internal/profile/delivery"
	profileUsecase "devconnector-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, profileUc profileUsecase.ProfileUsecase, postUc postUsecase.PostUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	profileHandler := profileDelivery.NewProfileHandler(profileUc)
	postHandler := postDelivery.NewPostHandler(postUc)
	requireAuth := delivery.AuthMiddleware(authUc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "App is running")
	})

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/users", authHandler.Register)

		auth := api.Group("/auth")
		{
			auth.GET("", requireAuth, authHandler.Me)
			auth.POST("", authHandler.Login)
		}

		// Profile routes; reads of other users' profiles are public
		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.List)
			profile.GET("/user/:user_id", profileHandler.GetByUserID)
			profile.GET("/github/:username", profileHandler.GitHubRepos)

			profile.GET("/me", requireAuth, profileHandler.GetMine)
			profile.POST("", requireAuth, profileHandler.Upsert)
			profile.DELETE("", requireAuth, profileHandler.DeleteAccount)
			profile.PUT("/experience", requireAuth, profileHandler.AddExperience)
			profile.DELETE("/experience/:exp_id", requireAuth, profileHandler.RemoveExperience)
			profile.PUT("/education", requireAuth, profileHandler.AddEducation)
			profile.DELETE("/education/:edu_id", requireAuth, profileHandler.RemoveEducation)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(requireAuth)
		{
			posts.POST("", postHandler.Create)
			posts.GET("", postHandler.List)
			posts.GET("/:id", postHandler.Get)
			posts.DELETE("/:id", postHandler.Delete)
			posts.PUT("/like/:id", postHandler.Like)
			posts.PUT("/unlike/:id", postHandler.Unlike)
			posts.POST("/comment/:id", postHandler.AddComment)
			posts.DELETE("/comment/:id/:comment_id", postHandler.RemoveComment)
		}
	}
}
