package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/schedule"
)

// Build assembles a complete job spec from a resolved schedule, the
// extracted action, the original message and the caller context. It has no
// side effects beyond generating a fresh id; persistence belongs to the
// store. The synthesized cron expression is validated before the spec is
// returned.
func Build(res schedule.Resolved, action, original string, ctx Context, now time.Time) (Spec, error) {
	if err := schedule.ValidateCron(res.CronExpression); err != nil {
		return Spec{}, fmt.Errorf("resolved schedule is not runnable: %w", err)
	}

	id := uuid.NewString()
	jobType := TypeOneTime
	if res.Recurring {
		jobType = TypeRecurring
	}

	return Spec{
		ID:         id,
		Name:       jobName(action, id),
		Schedule:   res.CronExpression,
		Type:       jobType,
		TargetTime: res.TargetTime,
		Action: Action{
			Type: ClassifyAction(action),
			Payload: Payload{
				Message:      action,
				OriginalText: original,
				Context: map[string]string{
					"sessionTarget": ctx.SessionTarget,
					"channel":       ctx.Channel,
				},
			},
		},
		SessionTarget: ctx.SessionTarget,
		Channel:       ctx.Channel,
		CreatedAt:     now,
		Metadata: Metadata{
			Source:     "scheduler",
			ParsedType: string(res.Kind),
			UserID:     ctx.UserID,
		},
	}, nil
}

// ClassifyAction maps an extracted action phrase to an action type by
// keyword. Unrecognized actions default to notify.
func ClassifyAction(action string) ActionType {
	lower := strings.ToLower(action)
	switch {
	case strings.Contains(lower, "wake"):
		return ActionSystemEvent
	case strings.Contains(lower, "report"):
		return ActionReport
	case strings.Contains(lower, "check"):
		return ActionCheck
	case strings.Contains(lower, "send"):
		return ActionSend
	default:
		return ActionNotify
	}
}

// jobName derives a stable, filesystem-friendly name from the action and a
// short id suffix.
func jobName(action, id string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, action)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if len(slug) > 32 {
		slug = strings.Trim(slug[:32], "-")
	}
	if slug == "" {
		slug = "job"
	}
	return slug + "-" + id[:8]
}
