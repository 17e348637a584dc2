// Command seed fills the database with demo accounts, offers, reviews and orders.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"coderr/config"
	"coderr/internal/domain/lifecycle"
	"coderr/internal/infra/auth"
	logs "coderr/internal/infra/log"
	"coderr/internal/infra/persistence/postgres"
	"coderr/internal/usecase"
	"coderr/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	migrate := flag.Bool("migrate", false, "Create or update the schema before seeding")
	flag.Parse()

	var (
		seeder usecase.SeedUsecase
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewSeedService,
		),
		fx.Populate(&seeder, &db, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build seed command", slog.Any("error", err))
		os.Exit(1)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		logger.Error("Failed to start seed command", slog.Any("error", err))
		os.Exit(1)
	}

	exitCode := run(context.Background(), seeder, db, logger, *migrate)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop seed command", slog.Any("error", err))
	}

	os.Exit(exitCode)
}

func run(ctx context.Context, seeder usecase.SeedUsecase, db *gorm.DB, logger *slog.Logger, migrate bool) int {
	if migrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("Failed to migrate schema", slog.Any("error", err))

			return 1
		}
	}

	report, err := seeder.SeedDemo(ctx)
	if err != nil {
		logger.Error("Failed to seed demo data", slog.Any("error", err))

		return 1
	}

	if report.Users+report.Offers+report.Reviews+report.Orders == 0 {
		logger.Info("Demo data already present, nothing to do")
	}

	return 0
}
