package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/huddle-inc/huddle/internal/infrastructure/config"
	"github.com/huddle-inc/huddle/internal/infrastructure/database"
	"github.com/huddle-inc/huddle/internal/infrastructure/repository"
	"github.com/huddle-inc/huddle/internal/infrastructure/scheduler"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting retention worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	deliveryRepo := repository.NewDeliveryLogRepository(database.Get())

	retention := scheduler.NewRetentionScheduler(
		deliveryRepo,
		cfg.Notification.DeliveryLogRetention(),
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	retention.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	retention.Stop()
	log.Infow("retention worker stopped")
}
