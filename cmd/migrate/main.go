package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/piresc/nebengcab/internal/pkg/config"
	"github.com/piresc/nebengcab/internal/pkg/database"
	"github.com/piresc/nebengcab/internal/pkg/logger"
	"github.com/piresc/nebengcab/internal/pkg/retry"
	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	configPath := config.GetEnv("CONFIG_PATH", "config/cab.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// golang-migrate's postgres driver expects lib/pq underneath
	var db *sqlx.DB
	if err := retry.NewWithDefaults(zapLogger).Execute(context.Background(), func(ctx context.Context) error {
		db, err = sqlx.ConnectContext(ctx, "postgres", database.DSN(configs.Database))
		return err
	}); err != nil {
		zapLogger.Fatal("Could not connect to the database", zap.Error(err))
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		zapLogger.Fatal("Could not create migration driver", zap.Error(err))
	}

	m, err := migrate.NewWithDatabaseInstance(configs.Database.MigrationsPath, configs.Database.Database, driver)
	if err != nil {
		zapLogger.Fatal("Could not start migrations", zap.Error(err))
	}

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		zapLogger.Fatal("Migration failed", zap.Error(err))
	}

	version, dirty, _ := m.Version()
	zapLogger.Info("Migrations applied",
		zap.Bool("down", *down),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
}
