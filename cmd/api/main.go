// Command api serves the food ordering authentication endpoints.
//
//	@title						Food Ordering API
//	@version					1.0
//	@description				Authentication endpoints of the food ordering backend.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/foodorder/food-ordering-api/internal/api"
	"github.com/foodorder/food-ordering-api/internal/api/handler"
	"github.com/foodorder/food-ordering-api/internal/core/ports"
	"github.com/foodorder/food-ordering-api/internal/core/service"
	"github.com/foodorder/food-ordering-api/internal/infrastructure/config"
	mongodb "github.com/foodorder/food-ordering-api/internal/infrastructure/db/mongo"
	redisdb "github.com/foodorder/food-ordering-api/internal/infrastructure/db/redis"
	"github.com/foodorder/food-ordering-api/internal/infrastructure/password"
	"github.com/foodorder/food-ordering-api/internal/infrastructure/token"
	"github.com/foodorder/food-ordering-api/pkg/logger"
)

const (
	serviceName     = "food-ordering-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		// Init is a no-op when run already built the logger.
		log := logger.Init(logger.Options{Service: serviceName})
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})
	log := logger.Get()
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET is using the built-in default; override it before deploying")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	tokens, err := token.NewManager(token.Config{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.AccessTTL(),
		RefreshTTL: cfg.RefreshTTL(),
	})
	if err != nil {
		return err
	}

	var limiter ports.LoginLimiter
	if cfg.Login.MaxAttempts > 0 {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.LockoutWindow)
	}

	authService := service.NewAuthService(
		users,
		password.NewBcrypt(cfg.Password.BcryptCost),
		tokens,
		limiter,
		logger.Get().With().Str("component", "auth").Logger(),
	)

	e := api.NewRouter(api.Dependencies{
		AuthService: authService,
		Tokens:      tokens,
		Readiness: map[string]handler.PingFunc{
			"mongodb": mongodb.Pinger(mongoClient),
			"redis":   redisdb.Pinger(rdb),
		},
		Logger: logger.Get().With().Str("component", "http").Logger(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	return shutdown(e, log)
}

func shutdown(e interface{ Shutdown(context.Context) error }, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}
