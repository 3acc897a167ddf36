// Command seed creates the initial admin account so the back office has a
// login to start from. Safe to re-run: an existing admin is left alone.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"streamflix/config"
	"streamflix/internal/app"
	"streamflix/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@streamflix.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Fatal("ADMIN_PASSWORD is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongodb", zap.Error(err))
	}

	a := app.New(cfg, logger, client, nil, nil)

	result, err := a.AuthService.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			logger.Info("admin already exists, nothing to do", zap.String("email", email))
			return
		}
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created",
		zap.String("id", result.Admin.ID),
		zap.String("email", result.Admin.Email),
	)
}
