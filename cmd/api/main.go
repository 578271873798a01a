package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/eduardopaniago/GestaoFrota/docs"
	"github.com/eduardopaniago/GestaoFrota/internal/adapter/http/routes"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/config"
	"github.com/eduardopaniago/GestaoFrota/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GestaoFrota API
// @version         1.0
// @description     Fleet expense bookkeeping for a small trucking business: ledger, fuel control, freight quotes, cloud backup.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}
