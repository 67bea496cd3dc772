package main

import (
	"context"
	"log/slog"
	"os"

	"tally/config"
	logs "tally/internal/infra/log"
	"tally/internal/infra/persistence/model"
	"tally/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(db *gorm.DB, logger *slog.Logger, shutdowner fx.Shutdowner) {
	// Column defaults rely on uuid_generate_v4.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)

	if err := db.AutoMigrate(&model.MerchantModel{}, &model.ReceiptModel{}); err != nil {
		logger.Error("Database migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Database migration complete")

	if err := shutdowner.Shutdown(); err != nil {
		logger.Error("Shutdown failed", slog.Any("error", err))
	}
}
