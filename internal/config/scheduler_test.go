package config

import (
	"os"
	"testing"
)

func TestSchedulerConfigDefaults(t *testing.T) {
	// shield the test from whatever the developer has exported;
	// t.Setenv registers the restore, Unsetenv makes the variable truly
	// absent so go-envconfig applies the default= values
	for _, key := range []string{"SCHEDULER_DATA_DIR", "SCHEDULER_TIMEZONE", "SCHEDULER_RUNNER", "SCHEDULER_BUS_BUFFER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := NewSchedulerConfigFromEnv()
	if err != nil {
		t.Fatalf("NewSchedulerConfigFromEnv: %v", err)
	}
	if cfg.DataDir != ".agency/jobs" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.RunnerCommand != "agency-runner" {
		t.Errorf("RunnerCommand = %q", cfg.RunnerCommand)
	}
	if cfg.BusBuffer != 100 {
		t.Errorf("BusBuffer = %d", cfg.BusBuffer)
	}
}

func TestSchedulerConfigOverrides(t *testing.T) {
	t.Setenv("SCHEDULER_DATA_DIR", "/tmp/jobs")
	t.Setenv("SCHEDULER_TIMEZONE", "UTC")
	t.Setenv("SCHEDULER_RUNNER", "my-runner")

	cfg, err := NewSchedulerConfigFromEnv()
	if err != nil {
		t.Fatalf("NewSchedulerConfigFromEnv: %v", err)
	}
	if cfg.DataDir != "/tmp/jobs" || cfg.RunnerCommand != "my-runner" {
		t.Errorf("cfg = %+v", cfg)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("location = %q", loc)
	}
}

func TestLocationDefaultsToLocal(t *testing.T) {
	cfg := &SchedulerConfig{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc == nil {
		t.Fatal("nil location")
	}
}

func TestLocationRejectsBadZone(t *testing.T) {
	cfg := &SchedulerConfig{Timezone: "Not/AZone"}
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}
