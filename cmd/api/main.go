package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/database"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/pkg/goauth"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/openai"
)

// @title       Calendar Assistant API
// @description Google Calendar backend with OAuth sign-in and LLM-assisted event creation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	if err := database.MigrateUp(cfg.Postgres.URL); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}

	db, err := database.Open(cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	// 4. Google OAuth client
	redirectURL := strings.TrimSuffix(cfg.Google.BaseURL, "/") + cfg.Google.RedirectPath
	oauthClient := goauth.New(goauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  redirectURL,
	})
	logger.Infof(ctx, "OAuth redirect URL: %s", redirectURL)

	// 5. LLM client
	llmClient, err := openai.New(openai.Config{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create OpenAI client: %v", err)
	}

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: db,
		OAuth:      oauthClient,
		LLM:        llmClient,

		SessionSecret:            cfg.Session.Secret,
		AssistantRateLimitPerMin: cfg.Assistant.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}
