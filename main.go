package main

import (
	api "devconnector-backend/cmd/api"
	authdomain "devconnector-backend/internal/auth/domain"
	postdomain "devconnector-backend/internal/post/domain"
	profiledomain "devconnector-backend/internal/profile/domain"
	"devconnector-backend/pkg/config"
	"devconnector-backend/pkg/database"
	"devconnector-backend/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg)

	// Initialize repositories for the configured driver
	var repos api.Repositories
	switch cfg.DBDriver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory, data will not survive a restart")
		repos = api.NewMemoryRepositories()
	case config.DriverPostgres:
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}

		// users first, profiles reference them
		if err := db.AutoMigrate(&authdomain.User{}, &profiledomain.Profile{}, &postdomain.Post{}); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
		repos = api.NewPostgresRepositories(db)
	default:
		log.Fatal().Str("driver", cfg.DBDriver).Msg("Unknown DB_DRIVER")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(cfg, repos)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
