package main

import (
	"log"
	"log/slog"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/cmd"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/config"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/scheduler"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/store"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	cfg, err := config.NewSchedulerConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load scheduler config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to resolve timezone: %v", err)
	}

	logger := slog.Default()
	st, err := store.NewFileStore(cfg.DataDir, cfg.RunnerCommand, logger)
	if err != nil {
		log.Fatalf("Failed to open job store: %v", err)
	}

	svc := scheduler.New(st, st, loc, logger)
	cmd.Execute(st, svc, cfg)
}
