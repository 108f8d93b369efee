package main

import (
	"errors"
	"fmt"
	"strconv"

	"summit/internal/config"
	"summit/internal/database"
	"summit/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the Summit PostgreSQL schema",
	Long:          "Applies or rolls back the embedded SQL migrations against the database configured by the DB_* environment variables.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration up failed: %w", err)
			}
			logger.Get().Info("Migrations applied successfully")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [N]",
	Short: "Roll back the last N migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		return withMigrator(func(m *migrate.Migrate) error {
			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration down failed: %w", err)
			}
			logger.Get().Infof("Rolled back %d migration(s)", steps)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				logger.Get().Info("No migrations applied")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(versionCmd)
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid step count: %w", err)
	}
	if steps < 1 {
		return 0, fmt.Errorf("step count must be positive, got %d", steps)
	}
	return steps, nil
}

func withMigrator(fn func(*migrate.Migrate) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DBDriver != "postgres" {
		return fmt.Errorf("SQL migrations target postgres; DB_DRIVER is %q (sqlite is migrated on server start)", cfg.DBDriver)
	}

	m, err := database.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer database.CloseMigrator(m)

	return fn(m)
}
