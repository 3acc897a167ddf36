package app

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"streamflix/config"
	"streamflix/internal/cache"
	"streamflix/internal/mq"
	"streamflix/internal/repository"
	"streamflix/internal/security"
	"streamflix/internal/service/domain"
	"streamflix/internal/service/workflow"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger

	Mongo  *mongo.Client
	Cache  *cache.RedisCache
	MQConn *amqp.Connection
	Tokens *security.TokenManager

	MovieRepo repository.MovieRepo
	AdminRepo repository.AdminRepo

	MovieService domain.MovieService
	AuthService  domain.AuthService

	ContentWorkflow *workflow.ContentWorkflow
}

func New(cfg *config.Config, logger *zap.Logger, client *mongo.Client, redisCache *cache.RedisCache, mqConn *amqp.Connection) *App {
	db := client.Database(cfg.MongoDB)

	movieRepo := repository.NewMovieRepoMongo(db, logger)
	adminRepo := repository.NewAdminRepoMongo(db, logger)

	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	movieService := domain.NewMovieService(movieRepo, redisCache, logger)
	authService := domain.NewAuthService(adminRepo, tokens, logger)

	contentWorkflow := workflow.NewContentWorkflow(movieService, mqConn, logger)

	return &App{
		Config:          cfg,
		Logger:          logger,
		Mongo:           client,
		Cache:           redisCache,
		MQConn:          mqConn,
		Tokens:          tokens,
		MovieRepo:       movieRepo,
		AdminRepo:       adminRepo,
		MovieService:    movieService,
		AuthService:     authService,
		ContentWorkflow: contentWorkflow,
	}
}

func (app *App) Init() error {
	if app.MQConn != nil {
		return mq.InitQueues(app.MQConn)
	}
	return nil
}

func (app *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if err := app.Mongo.Disconnect(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := app.Cache.Close(); err != nil {
		errs = append(errs, err)
	}
	if app.MQConn != nil {
		if err := app.MQConn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
