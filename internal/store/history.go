package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
)

const (
	historyFile = "history.json"
	historyLock = "history.lock"

	// HistoryCap is the maximum number of retained audit entries; the
	// oldest are evicted first.
	HistoryCap = 100

	// originalMessageLimit caps stored message text, counted in runes so
	// truncation never splits a multi-byte character.
	originalMessageLimit = 120

	lockRetryInterval = 10 * time.Millisecond
	lockTimeout       = 2 * time.Second
	lockStaleAfter    = 10 * time.Second
)

// HistoryEntry is one append-only audit record. History is observability
// only and is never consulted for scheduling decisions.
type HistoryEntry struct {
	JobID           string    `json:"jobId"`
	Timestamp       time.Time `json:"timestamp"`
	Type            job.Type  `json:"type"`
	Schedule        string    `json:"schedule"`
	Action          string    `json:"action"`
	OriginalMessage string    `json:"originalMessage"`
}

// HistoryLog is the audit sink the scheduler writes to. Append failures are
// the caller's to swallow: history must never fail job creation.
type HistoryLog interface {
	Append(entry HistoryEntry) error
}

// Append adds an entry to the capped history log. The read-modify-write is
// guarded by an in-process mutex plus an on-disk lock file so concurrent
// processes do not lose updates.
func (s *FileStore) Append(entry HistoryEntry) error {
	entry.OriginalMessage = truncateMessage(entry.OriginalMessage)

	s.hmu.Lock()
	defer s.hmu.Unlock()

	unlock, err := s.acquireHistoryLock()
	if err != nil {
		return err
	}
	defer unlock()

	entries, err := s.readHistory()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > HistoryCap {
		entries = entries[len(entries)-HistoryCap:]
	}
	return s.writeHistory(entries)
}

// truncateMessage trims s to originalMessageLimit runes.
func truncateMessage(s string) string {
	if utf8.RuneCountInString(s) <= originalMessageLimit {
		return s
	}
	return string([]rune(s)[:originalMessageLimit])
}

// History returns the retained audit entries, oldest first.
func (s *FileStore) History() ([]HistoryEntry, error) {
	s.hmu.Lock()
	defer s.hmu.Unlock()
	return s.readHistory()
}

func (s *FileStore) readHistory() ([]HistoryEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, historyFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history log: %w", err)
	}
	return entries, nil
}

// writeHistory replaces the log atomically via a temp file and rename.
func (s *FileStore) writeHistory(entries []HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history log: %w", err)
	}

	tmp := filepath.Join(s.dir, historyFile+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history log: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, historyFile)); err != nil {
		return fmt.Errorf("failed to replace history log: %w", err)
	}
	return nil
}

// acquireHistoryLock takes the cross-process lock file, breaking locks left
// behind by a crashed writer.
func (s *FileStore) acquireHistoryLock() (func(), error) {
	lockPath := filepath.Join(s.dir, historyLock)
	deadline := time.Now().Add(lockTimeout)

	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to take history lock: %w", err)
		}

		if info, statErr := os.Stat(lockPath); statErr == nil && time.Since(info.ModTime()) > lockStaleAfter {
			os.Remove(lockPath)
			continue
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for history lock")
		}
		time.Sleep(lockRetryInterval)
	}
}
