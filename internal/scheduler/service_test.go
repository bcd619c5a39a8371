package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/store"
)

// 2024-01-01T10:00:00Z is a Monday.
var fixedNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.FileStore) {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir(), "agency-runner", nil)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	svc := New(fs, fs, time.UTC, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, fs
}

func TestAnalyzeAndCreateRelativeMinutes(t *testing.T) {
	svc, fs := newTestService(t)

	res := svc.AnalyzeAndCreate("Remind me in 5 minutes to check the oven", job.Context{
		SessionTarget: "telegram:123",
		Channel:       "telegram",
		UserID:        "u1",
	})

	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	if res.Kind != "relative_minutes" {
		t.Errorf("kind = %q, want relative_minutes", res.Kind)
	}
	want := time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC)
	if !res.TargetTime.Equal(want) {
		t.Errorf("target = %v, want %v", res.TargetTime, want)
	}
	if res.Action != "check the oven" {
		t.Errorf("action = %q, want %q", res.Action, "check the oven")
	}
	if res.Recurring || res.Ambiguous || res.Err != "" {
		t.Errorf("unexpected flags: %+v", res)
	}

	spec, err := fs.Get(res.JobID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if spec.Type != job.TypeOneTime {
		t.Errorf("persisted type = %q, want one-time", spec.Type)
	}
	if spec.SessionTarget != "telegram:123" || spec.Metadata.UserID != "u1" {
		t.Errorf("persisted routing = %+v", spec)
	}
}

func TestAnalyzeAndCreateNoTimeDetected(t *testing.T) {
	svc, fs := newTestService(t)

	res := svc.AnalyzeAndCreate("Thanks for the update", job.Context{})
	if res.Detected {
		t.Fatalf("unexpected detection: %+v", res)
	}
	if res.JobID != "" || res.Err != "" {
		t.Errorf("negative result must have no job or error: %+v", res)
	}

	jobs, err := fs.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("no side effects expected, found %d jobs", len(jobs))
	}
}

func TestAnalyzeAndCreateWakeUp(t *testing.T) {
	svc, fs := newTestService(t)

	// 07:30 has passed at 10:00, so the target is tomorrow
	res := svc.AnalyzeAndCreate("Wake me up at 7:30am", job.Context{})
	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	want := time.Date(2024, 1, 2, 7, 30, 0, 0, time.UTC)
	if !res.TargetTime.Equal(want) {
		t.Errorf("target = %v, want %v", res.TargetTime, want)
	}
	if res.Action != "wake-up" {
		t.Errorf("action = %q, want wake-up", res.Action)
	}

	spec, err := fs.Get(res.JobID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if spec.Action.Type != job.ActionSystemEvent {
		t.Errorf("action type = %q, want systemEvent", spec.Action.Type)
	}
}

func TestAnalyzeAndCreateHourly(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.AnalyzeAndCreate("Check emails every hour", job.Context{})
	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	if res.CronExpression != "0 * * * * *" {
		t.Errorf("cron = %q, want %q", res.CronExpression, "0 * * * * *")
	}
	if res.Kind != "hourly" {
		t.Errorf("kind = %q, want hourly", res.Kind)
	}
	if res.Action != "check emails" {
		t.Errorf("action = %q, want %q", res.Action, "check emails")
	}
	if !res.Recurring {
		t.Error("hourly must be recurring")
	}
}

func TestAnalyzeAndCreateDaily(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.AnalyzeAndCreate("give me a report on sales daily at 9am", job.Context{})
	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	if res.CronExpression != "0 0 9 * * *" {
		t.Errorf("cron = %q, want %q", res.CronExpression, "0 0 9 * * *")
	}
	if res.Action != "report on sales" {
		t.Errorf("action = %q, want %q", res.Action, "report on sales")
	}
}

func TestAnalyzeAndCreateAmbiguousClock(t *testing.T) {
	svc, _ := newTestService(t)

	res := svc.AnalyzeAndCreate("remind me at 5 to leave", job.Context{})
	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	if !res.Ambiguous {
		t.Error("bare hour should be flagged ambiguous")
	}
	want := time.Date(2024, 1, 2, 5, 0, 0, 0, time.UTC)
	if !res.TargetTime.Equal(want) {
		t.Errorf("target = %v, want %v (24h space)", res.TargetTime, want)
	}
}

func TestAnalyzeAndCreateRecordsHistory(t *testing.T) {
	svc, fs := newTestService(t)

	res := svc.AnalyzeAndCreate("Remind me in 5 minutes to check the oven", job.Context{})
	if !res.Detected || res.JobID == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	entries, err := fs.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d history entries, want 1", len(entries))
	}
	if entries[0].JobID != res.JobID || entries[0].Action != "check the oven" {
		t.Errorf("history entry = %+v", entries[0])
	}
}

type failingRepo struct{}

func (failingRepo) Create(job.Spec) (string, error) { return "", errors.New("disk full") }
func (failingRepo) List() ([]job.Spec, error)       { return nil, nil }
func (failingRepo) Get(string) (job.Spec, error)    { return job.Spec{}, store.ErrNotFound }
func (failingRepo) Cancel(string) (bool, error)     { return false, nil }

// A detected time with a failed save must be distinguishable from "no time
// found": Detected stays true and Err carries the storage failure.
func TestAnalyzeAndCreateStorageError(t *testing.T) {
	svc := New(failingRepo{}, nil, time.UTC, nil)
	svc.now = func() time.Time { return fixedNow }

	res := svc.AnalyzeAndCreate("Remind me in 5 minutes to check the oven", job.Context{})
	if !res.Detected {
		t.Fatal("detection succeeded; Detected must stay true")
	}
	if res.Err == "" {
		t.Fatal("expected persistence error to surface")
	}
	if res.JobID != "" {
		t.Errorf("no job id on failed save, got %q", res.JobID)
	}
}

func TestAnalyzeDryRun(t *testing.T) {
	svc, fs := newTestService(t)

	res := svc.Analyze("daily at 9am")
	if !res.Detected {
		t.Fatalf("not detected: %+v", res)
	}
	if res.JobID != "" {
		t.Errorf("dry run must not create a job, got id %q", res.JobID)
	}

	jobs, err := fs.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("dry run persisted %d jobs", len(jobs))
	}
}

func TestAnalyzeAndCreateUnresolvableClock(t *testing.T) {
	svc, _ := newTestService(t)

	// matches the 24h pattern but is not a valid clock time
	res := svc.AnalyzeAndCreate("meet at 99:00", job.Context{})
	if res.Detected {
		t.Errorf("invalid clock should resolve to no detection: %+v", res)
	}
}
