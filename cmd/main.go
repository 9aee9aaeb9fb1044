package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-catalog/cmd/config"
	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/cmd/database/seed"
	"recipe-catalog/internal/logger"
	"recipe-catalog/internal/utils"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "recipe-catalog",
	Short:         "Recipe and ingredient catalog API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), serve)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(_ context.Context, db *gorm.DB, _ *zap.Logger) error {
			return migration.Migrate(db)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and fill an empty catalog with starter data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
			if err := migration.Migrate(db); err != nil {
				return err
			}
			return seed.Seed(ctx, db, log)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the yaml config file")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func withDatabase(ctx context.Context, fn func(context.Context, *gorm.DB, *zap.Logger) error) error {
	utils.LoadConfig(configPath)

	log := logger.New(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("APP_ENV"))
	defer func() { _ = log.Sync() }()

	db, err := config.ConnectDB(log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return fn(ctx, db, log)
}

func serve(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if err := migration.Migrate(db); err != nil {
		return err
	}
	if utils.GetConfigBool("SEED_DATA") {
		if err := seed.Seed(ctx, db, log); err != nil {
			return err
		}
	}

	app, err := config.NewApp(db, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + utils.GetConfig("APP_PORT"))
	}()
	log.Info("server started", zap.String("port", utils.GetConfig("APP_PORT")))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		stop()
		os.Exit(1)
	}
}
