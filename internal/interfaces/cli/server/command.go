package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/huddle-inc/huddle/internal/infrastructure/config"
	"github.com/huddle-inc/huddle/internal/infrastructure/database"
	"github.com/huddle-inc/huddle/internal/infrastructure/migration"
	httpRouter "github.com/huddle-inc/huddle/internal/interfaces/http"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Huddle notification HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run gorm auto-migration on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate,
	)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	router, err := httpRouter.NewRouter(httpRouter.Dependencies{
		Config: cfg,
		DB:     database.Get(),
		Redis:  redisClient,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment, this is not recommended")
		}

		log.Infow("running auto-migration")
		if err := migration.AutoMigrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
		return nil
	}

	scriptsPath, err := filepath.Abs(migration.DefaultScriptsPath)
	if err != nil {
		log.Warnw("failed to resolve migration scripts path", "error", err)
		return nil
	}

	runner := migration.NewRunner(scriptsPath, log)
	version, dirty, err := runner.Version(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}

	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, resolve before starting", version)
	}

	log.Infow("migration check completed", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
