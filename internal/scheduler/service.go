package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/schedule"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/store"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/timeparse"
)

// Result is the structured outcome of analyzing one message. The entry
// point never panics or returns a bare error: callers render detected /
// not-detected / failed states from this one shape. Err is set only when a
// time expression WAS detected but the job could not be persisted.
type Result struct {
	Detected       bool      `json:"detected"`
	JobID          string    `json:"jobId,omitempty"`
	Kind           string    `json:"type,omitempty"`
	TargetTime     time.Time `json:"targetTime,omitzero"`
	Action         string    `json:"action,omitempty"`
	CronExpression string    `json:"cronExpression,omitempty"`
	Recurring      bool      `json:"recurring,omitempty"`
	Ambiguous      bool      `json:"ambiguous,omitempty"`
	Message        string    `json:"message"`
	Err            string    `json:"error,omitempty"`
}

// Service runs the full pipeline: detect a time expression, extract the
// action, resolve the schedule, build the job spec and persist it. Parsing
// and resolution are pure; only store calls touch the filesystem.
type Service struct {
	detector  *timeparse.Detector
	extractor *timeparse.Extractor
	repo      store.Repository
	history   store.HistoryLog
	loc       *time.Location
	log       *slog.Logger

	// now is injectable so resolution is deterministic under test.
	now func() time.Time
}

func New(repo store.Repository, history store.HistoryLog, loc *time.Location, logger *slog.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	catalog := timeparse.NewCatalog()
	return &Service{
		detector:  timeparse.NewDetector(catalog),
		extractor: timeparse.NewExtractor(catalog),
		repo:      repo,
		history:   history,
		loc:       loc,
		log:       logger,
		now:       time.Now,
	}
}

// Analyze runs detection, extraction and resolution without persisting
// anything. Useful for dry runs.
func (s *Service) Analyze(message string) Result {
	res, _, ok := s.analyze(message)
	if !ok {
		return res
	}
	res.Message = confirmation(res, "would schedule")
	return res
}

// AnalyzeAndCreate analyzes message and, if a time expression is found,
// persists the resulting job. A message with no temporal content returns
// Detected=false with no side effects.
func (s *Service) AnalyzeAndCreate(message string, ctx job.Context) Result {
	res, resolved, ok := s.analyze(message)
	if !ok {
		return res
	}

	spec, err := job.Build(resolved, res.Action, message, ctx, s.now().In(s.loc))
	if err != nil {
		s.log.Error("failed to build job spec", "error", err)
		res.Err = err.Error()
		res.Message = "schedule recognized but the job could not be assembled"
		return res
	}

	id, err := s.repo.Create(spec)
	if err != nil {
		s.log.Error("failed to persist job", "error", err)
		res.Err = err.Error()
		res.Message = "schedule recognized but the job could not be saved"
		return res
	}
	res.JobID = id

	if s.history != nil {
		entry := store.HistoryEntry{
			JobID:           id,
			Timestamp:       spec.CreatedAt,
			Type:            spec.Type,
			Schedule:        spec.Schedule,
			Action:          res.Action,
			OriginalMessage: message,
		}
		// history is observability only; failures never fail creation
		if err := s.history.Append(entry); err != nil {
			s.log.Warn("failed to append job history", "id", id, "error", err)
		}
	}

	res.Message = confirmation(res, "scheduled")
	return res
}

// analyze runs the pure part of the pipeline. ok is false when no usable
// time expression was found; per contract that is a normal negative result,
// never an error.
func (s *Service) analyze(message string) (Result, schedule.Resolved, bool) {
	match, ok := s.detector.Detect(message)
	if !ok {
		return Result{Message: "no time expression detected"}, schedule.Resolved{}, false
	}

	now := s.now().In(s.loc)
	resolved, err := schedule.Resolve(match, now)
	if err != nil {
		// matched text that does not resolve to a valid clock time is
		// treated as no scheduling intent
		s.log.Debug("time expression did not resolve", "text", match.Text, "error", err)
		return Result{Message: "no time expression detected"}, schedule.Resolved{}, false
	}

	action := s.extractor.Extract(match.Strip(message))

	return Result{
		Detected:       true,
		Kind:           string(resolved.Kind),
		TargetTime:     resolved.TargetTime,
		Action:         action,
		CronExpression: resolved.CronExpression,
		Recurring:      resolved.Recurring,
		Ambiguous:      resolved.Ambiguous,
	}, resolved, true
}

func confirmation(res Result, verb string) string {
	msg := fmt.Sprintf("%s %q for %s", verb, res.Action, res.TargetTime.Format(time.RFC3339))
	if res.Recurring {
		msg += " (recurring)"
	}
	if res.Ambiguous {
		msg += " (hour taken as 24h clock; add am/pm to disambiguate)"
	}
	return msg
}
