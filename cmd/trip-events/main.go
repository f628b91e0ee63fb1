package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/nebengcab/internal/pkg/broker"
	"github.com/piresc/nebengcab/internal/pkg/config"
	"github.com/piresc/nebengcab/internal/pkg/constants"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengcab/internal/pkg/newrelic"
	"github.com/piresc/nebengcab/internal/pkg/retry"
	"github.com/piresc/nebengcab/services/trips/handler/events"
	"go.uber.org/zap"
)

func main() {
	appName := "trip-events"
	configPath := config.GetEnv("CONFIG_PATH", "config/cab.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("broker", configs.Broker.Type),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	audit := events.NewAuditLogger(zapLogger)

	var sub *broker.Subscription
	if err := retry.NewWithDefaults(zapLogger).Execute(ctx, func(context.Context) error {
		sub, err = broker.Subscribe(configs, appName, appName, constants.TripSubjects, audit.Handle)
		return err
	}); err != nil {
		zapLogger.Fatal("Failed to subscribe to trip events", zap.Error(err))
	}

	<-ctx.Done()
	zapLogger.Info("Received shutdown signal")

	if err := sub.Close(); err != nil {
		zapLogger.Error("Failed to close subscription", zap.Error(err))
	}
	zapLogger.Info("Shutdown completed")
}
