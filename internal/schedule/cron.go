package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// parser accepts the 6-field dialect this package synthesizes:
// second minute hour day-of-month month day-of-week.
var parser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// ValidateCron checks that expr parses in the 6-field dialect.
func ValidateCron(expr string) error {
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// NextAfter returns the first activation of expr strictly after the given
// time.
func NextAfter(expr string, after time.Time) (time.Time, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return sched.Next(after), nil
}

// NextRunTimesAfter returns the next n activations of expr after a specific
// time. It returns an error if the expression is invalid or n is less
// than 1.
func NextRunTimesAfter(expr string, after time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, fmt.Errorf("count must be greater than 0")
	}
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}

	times := make([]time.Time, 0, n)
	cursor := after
	for i := 0; i < n; i++ {
		cursor = sched.Next(cursor)
		if cursor.IsZero() {
			break
		}
		times = append(times, cursor)
	}
	return times, nil
}
