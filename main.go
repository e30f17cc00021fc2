package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Jonny137/cocktail-bar-backend/internal/client"
	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/db"
	"github.com/Jonny137/cocktail-bar-backend/internal/handler"
	"github.com/Jonny137/cocktail-bar-backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.Postgres); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}

	tokenSvc, err := service.NewTokenService(store, cfg.Auth)
	if err != nil {
		logger.Error("invalid auth config", "error", err)
		os.Exit(1)
	}

	mailer := client.NewMailer(cfg.Mail, logger)
	authSvc, err := service.NewAuthService(store, tokenSvc, mailer, cfg.Auth, cfg.Server.FrontendURL, logger)
	if err != nil {
		logger.Error("invalid auth config", "error", err)
		os.Exit(1)
	}

	adminSvc := service.NewAdminService(store, tokenSvc)
	cocktailSvc := service.NewCocktailService(store, client.NewImageUploader(cfg.Images))

	router := handler.NewRouter(cfg.Server, authSvc, adminSvc, cocktailSvc)

	logger.Info("starting server", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
