package main

import (
	"context"

	"bengkel/config"
	"bengkel/di"
	"bengkel/shared/logger"

	"github.com/rs/zerolog/log"
)

// Boots the app against the configured storage directory and prints the
// current booking stats. Mostly a smoke entrypoint; the real consumer embeds
// app.App directly.
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	bengkel, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize app")
	}

	stats, err := bengkel.Reports.StatsFor(context.Background(), "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read booking stats")
	}

	log.Info().
		Str("name", cfg.App.Name).
		Str("storageDir", cfg.Storage.Dir).
		Int("totalBookings", stats.Total).
		Int("completedBookings", stats.Completed).
		Int("pendingBookings", stats.Pending).
		Msg("bengkel app ready")
}
