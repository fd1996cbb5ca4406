// main.go
package main

import (
	"context"
	"log"

	"contacts-api/cmd"
	"contacts-api/internal/data/repository"
	"contacts-api/internal/wire"
	"contacts-api/pkg/database"
	"contacts-api/pkg/mailer"
	"contacts-api/pkg/storage"
	"contacts-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.RunMigrations(context.Background(), config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Avatar object storage
	store, err := storage.NewMinioStorage(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.Error(err))
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		logger.Fatal("Failed to ensure avatar bucket", zap.Error(err))
	}

	// Verification email sender
	mail := mailer.NewMailer(config.Mail.APIURL, config.Mail.APIKey, config.Mail.From, config.App.BaseURL)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, store, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
