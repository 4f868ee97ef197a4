package main

import (
	"flag"
	"log"

	"smart-global-hub/pkg/config"
	"smart-global-hub/pkg/logger"
	"smart-global-hub/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 for all")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.Migrate(&cfg.Database, *direction, *steps, appLogger); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}
}
