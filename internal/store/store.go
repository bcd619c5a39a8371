package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
)

// ErrNotFound is returned by Get when no record exists for an id.
var ErrNotFound = errors.New("job not found")

// Repository is the storage contract the scheduler depends on. The file
// store below is the reference backing; an embedded database can replace it
// without touching parsing or resolution.
type Repository interface {
	Create(spec job.Spec) (string, error)
	List() ([]job.Spec, error)
	Get(id string) (job.Spec, error)
	Cancel(id string) (bool, error)
}

// FileStore keeps one JSON record and one shell artifact per job under a
// single directory, plus the capped history log. Records are named
// <id>.json and artifacts <id>.sh.
type FileStore struct {
	dir       string
	runnerCmd string
	log       *slog.Logger

	// hmu serializes history rewrites within this process; cross-process
	// writers coordinate through the lock file (see history.go).
	hmu sync.Mutex
}

// NewFileStore creates the backing directory if needed. runnerCmd is the
// external command each artifact invokes at trigger time.
func NewFileStore(dir, runnerCmd string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create job directory: %w", err)
	}
	return &FileStore{dir: dir, runnerCmd: runnerCmd, log: logger}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) artifactPath(id string) string {
	return filepath.Join(s.dir, id+".sh")
}

// Create persists the job record and writes its companion executable
// artifact. On artifact failure the record is rolled back so no orphan is
// left behind.
func (s *FileStore) Create(spec job.Spec) (string, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal job record: %w", err)
	}

	recordPath := s.recordPath(spec.ID)
	if err := os.WriteFile(recordPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write job record: %w", err)
	}

	script := renderArtifact(spec, s.runnerCmd)
	if err := os.WriteFile(s.artifactPath(spec.ID), []byte(script), 0o755); err != nil {
		if rmErr := os.Remove(recordPath); rmErr != nil && !os.IsNotExist(rmErr) {
			s.log.Warn("failed to roll back job record", "id", spec.ID, "error", rmErr)
		}
		return "", fmt.Errorf("failed to write job artifact: %w", err)
	}

	s.log.Info("job created", "id", spec.ID, "type", spec.Type, "target", spec.TargetTime)
	return spec.ID, nil
}

// List returns all stored job records sorted ascending by target time.
// Unreadable records are skipped with a warning rather than failing the
// whole listing.
func (s *FileStore) List() ([]job.Spec, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read job directory: %w", err)
	}

	jobs := make([]job.Spec, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == historyFile {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.log.Warn("failed to read job record", "file", name, "error", err)
			continue
		}
		var spec job.Spec
		if err := json.Unmarshal(data, &spec); err != nil {
			s.log.Warn("failed to parse job record", "file", name, "error", err)
			continue
		}
		jobs = append(jobs, spec)
	}

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].TargetTime.Equal(jobs[j].TargetTime) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].TargetTime.Before(jobs[j].TargetTime)
	})
	return jobs, nil
}

// Get returns the record for id, or ErrNotFound.
func (s *FileStore) Get(id string) (job.Spec, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if os.IsNotExist(err) {
		return job.Spec{}, ErrNotFound
	}
	if err != nil {
		return job.Spec{}, fmt.Errorf("failed to read job record: %w", err)
	}

	var spec job.Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return job.Spec{}, fmt.Errorf("failed to parse job record: %w", err)
	}
	return spec, nil
}

// Cancel deletes the record and its artifact. It is idempotent: cancelling
// a job that no longer exists returns false without an error.
func (s *FileStore) Cancel(id string) (bool, error) {
	err := os.Remove(s.recordPath(id))
	if os.IsNotExist(err) {
		// still sweep a leftover artifact
		if rmErr := os.Remove(s.artifactPath(id)); rmErr != nil && !os.IsNotExist(rmErr) {
			return false, fmt.Errorf("failed to remove job artifact: %w", rmErr)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove job record: %w", err)
	}

	if rmErr := os.Remove(s.artifactPath(id)); rmErr != nil && !os.IsNotExist(rmErr) {
		return false, fmt.Errorf("failed to remove job artifact: %w", rmErr)
	}

	s.log.Info("job cancelled", "id", id)
	return true, nil
}
