package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengcab/internal/pkg/broker"
	"github.com/piresc/nebengcab/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengcab/internal/pkg/config"
	"github.com/piresc/nebengcab/internal/pkg/database"
	"github.com/piresc/nebengcab/internal/pkg/health"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/middleware"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/internal/pkg/retry"
	"github.com/piresc/nebengcab/internal/pkg/server"
	"github.com/piresc/nebengcab/internal/utils"
	cabHandler "github.com/piresc/nebengcab/services/cabs/handler"
	cabRepository "github.com/piresc/nebengcab/services/cabs/repository"
	cabUsecase "github.com/piresc/nebengcab/services/cabs/usecase"
	tripGateway "github.com/piresc/nebengcab/services/trips/gateway"
	tripHandler "github.com/piresc/nebengcab/services/trips/handler"
	tripRepository "github.com/piresc/nebengcab/services/trips/repository"
	tripUsecase "github.com/piresc/nebengcab/services/trips/usecase"
	userHandler "github.com/piresc/nebengcab/services/users/handler"
	userRepository "github.com/piresc/nebengcab/services/users/repository"
	userUsecase "github.com/piresc/nebengcab/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "cab-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/cab.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("broker", configs.Broker.Type),
	)

	// Dependencies may come up after us in compose, so connect with backoff
	retrier := retry.NewWithDefaults(zapLogger)
	startCtx := context.Background()

	var postgresClient *database.PostgresClient
	if err := retrier.Execute(startCtx, func(context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	var redisClient *database.RedisClient
	if err := retrier.Execute(startCtx, func(context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	var publisher broker.Publisher
	if err := retrier.Execute(startCtx, func(context.Context) error {
		publisher, err = broker.NewPublisher(configs, appName)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to connect to message broker", zap.Error(err))
	}

	// Initialize repositories
	userRepo := userRepository.NewUserRepository(configs, postgresClient.GetDB())
	tokenRepo := userRepository.NewTokenRepository(redisClient)
	cabRepo := cabRepository.NewCabRepository(configs, postgresClient.GetDB())
	tripRepo := tripRepository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	publishBreaker := circuitbreaker.New(circuitbreaker.DefaultConfig("broker"), zapLogger)
	tripGW := tripGateway.NewTripGW(broker.Guard(publisher, publishBreaker))

	// Initialize usecases
	userUC := userUsecase.NewUserUC(configs, userRepo, tokenRepo)
	cabUC := cabUsecase.NewCabUC(configs, cabRepo)
	tripUC := tripUsecase.NewTripUC(configs, tripRepo, tripGW)

	if err := userUC.EnsureBootstrapAdmin(startCtx); err != nil {
		zapLogger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker("broker", health.PingChecker(publisher))
	health.RegisterHealthEndpoints(e, healthService)

	// Register service routes
	users := userHandler.NewHandler(userUC)

	authGroup := e.Group("/auth")
	if configs.RateLimit.Enabled {
		authGroup.Use(middleware.IPRateLimiter(
			configs.RateLimit.Limit,
			time.Duration(configs.RateLimit.Period)*time.Second,
			redisClient,
		))
	}
	users.RegisterPublicRoutes(authGroup)

	api := e.Group("", middleware.JWTAuthMiddleware(configs.JWT, tokenRepo))
	users.RegisterRoutes(api)
	cabHandler.NewHandler(cabUC).RegisterRoutes(api)
	tripHandler.NewHandler(tripUC).RegisterRoutes(api)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return publisher.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
