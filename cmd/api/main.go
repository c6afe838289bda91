package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/selim/lostfound/internal/pkg/logger"
	"github.com/selim/lostfound/internal/server"
)

func main() {
	// Load .env if present; real environment variables still win
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
