package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// SchedulerConfig controls the scheduler core: where job records live, the
// timezone used for calendar arithmetic, and the command the companion
// artifacts invoke at trigger time.
type SchedulerConfig struct {
	DataDir       string `env:"SCHEDULER_DATA_DIR, default=.agency/jobs"`
	Timezone      string `env:"SCHEDULER_TIMEZONE"`
	RunnerCommand string `env:"SCHEDULER_RUNNER, default=agency-runner"`
	BusBuffer     int    `env:"SCHEDULER_BUS_BUFFER, default=100"`
}

func NewSchedulerConfigFromEnv() (*SchedulerConfig, error) {
	var cfg SchedulerConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the configured timezone; empty means the system local
// zone.
func (c *SchedulerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
