package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huddle-inc/huddle/internal/infrastructure/config"
	"github.com/huddle-inc/huddle/internal/infrastructure/database"
	"github.com/huddle-inc/huddle/internal/infrastructure/migration"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

var (
	env     string
	steps   int
	version int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect the current version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the migration version after manual schema repair",
		RunE:  runForce,
	}

	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to force (required)")
	cmd.MarkFlagRequired("version")

	return cmd
}

func initEnv() (*migration.Runner, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs(migration.DefaultScriptsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	return migration.NewRunner(scriptsPath, log), log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	runner, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := runner.Up(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	runner, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := runner.Down(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	runner, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	current, dirty, err := runner.Version(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", current)
	fmt.Printf("  Dirty:           %t\n", dirty)

	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	runner, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Warnw("forcing migration version", "version", version)

	if err := runner.Force(database.Get(), version); err != nil {
		log.Errorw("failed to force migration version", "error", err)
		return fmt.Errorf("failed to force migration version: %w", err)
	}

	log.Infow("migration version forced", "version", version)
	return nil
}
