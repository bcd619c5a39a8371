package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/timeparse"
)

// Resolved is the concrete schedule derived from a detector match: a target
// timestamp that is always strictly in the future relative to the supplied
// "now", plus a cron expression. For recurring kinds TargetTime is the next
// occurrence; for one-shot kinds the cron expression pins the exact
// minute/hour/day/month of TargetTime.
type Resolved struct {
	Kind           timeparse.Kind
	TargetTime     time.Time
	CronExpression string
	Recurring      bool
	// Ambiguous marks a clock time given without am/pm that was resolved
	// in 24h space (e.g. "at 5" means 05:00).
	Ambiguous bool
}

// weekday name -> cron day-of-week (Sunday=0 .. Saturday=6).
var weekdays = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tues": 2, "tue": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thurs": 4, "thu": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}

// Resolve converts a detector match into a Resolved schedule. It is a pure
// function of (match, now): given the same inputs it always produces the
// same output. The returned target time is computed in now's location.
func Resolve(m timeparse.Match, now time.Time) (Resolved, error) {
	switch m.Kind {
	case timeparse.KindRelativeMinutes:
		return resolveRelative(m, now, time.Minute)
	case timeparse.KindRelativeHours:
		return resolveRelative(m, now, time.Hour)
	case timeparse.KindRelativeDays:
		return resolveRelative(m, now, 0)
	case timeparse.KindDaily:
		return resolveDaily(m, now)
	case timeparse.KindWeekly:
		return resolveWeekly(m, now)
	case timeparse.KindHourly:
		return resolveHourly(m, now)
	case timeparse.KindAbsolute12h, timeparse.KindAbsolute24h:
		return resolveAbsolute(m, now)
	default:
		return Resolved{}, fmt.Errorf("unknown time pattern kind %q", m.Kind)
	}
}

// resolveRelative handles "in N minutes/hours/days". A zero unit means
// whole days, which advance by calendar date rather than 24h spans.
func resolveRelative(m timeparse.Match, now time.Time, unit time.Duration) (Resolved, error) {
	n, err := strconv.Atoi(m.Groups[0])
	if err != nil || n <= 0 {
		return Resolved{}, fmt.Errorf("invalid offset %q", m.Groups[0])
	}

	var target time.Time
	if unit == 0 {
		target = now.AddDate(0, 0, n)
	} else {
		target = now.Add(time.Duration(n) * unit)
	}

	return Resolved{
		Kind:           m.Kind,
		TargetTime:     target,
		CronExpression: oneShotExpr(target),
	}, nil
}

func resolveDaily(m timeparse.Match, now time.Time) (Resolved, error) {
	hour, minute, _, err := clockFromGroups(m.Groups[0], m.Groups[1], m.Groups[2])
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Kind:           timeparse.KindDaily,
		TargetTime:     nextClockTime(now, hour, minute),
		CronExpression: fmt.Sprintf("0 %d %d * * *", minute, hour),
		Recurring:      true,
	}, nil
}

func resolveWeekly(m timeparse.Match, now time.Time) (Resolved, error) {
	day, ok := weekdays[strings.ToLower(m.Groups[0])]
	if !ok {
		return Resolved{}, fmt.Errorf("unknown weekday %q", m.Groups[0])
	}
	hour, minute, _, err := clockFromGroups(m.Groups[1], m.Groups[2], m.Groups[3])
	if err != nil {
		return Resolved{}, err
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	ahead := (day - int(now.Weekday()) + 7) % 7
	if ahead == 0 && !candidate.After(now) {
		// today is the target weekday but the time has passed: exactly one
		// week out, never tomorrow
		ahead = 7
	}

	return Resolved{
		Kind:           timeparse.KindWeekly,
		TargetTime:     candidate.AddDate(0, 0, ahead),
		CronExpression: fmt.Sprintf("0 %d %d * * %d", minute, hour, day),
		Recurring:      true,
	}, nil
}

func resolveHourly(m timeparse.Match, now time.Time) (Resolved, error) {
	startOfHour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	return Resolved{
		Kind:           timeparse.KindHourly,
		TargetTime:     startOfHour.Add(time.Hour),
		CronExpression: "0 * * * * *",
		Recurring:      true,
	}, nil
}

func resolveAbsolute(m timeparse.Match, now time.Time) (Resolved, error) {
	// the 24h pattern has no meridiem capture group
	mer := ""
	if len(m.Groups) > 2 {
		mer = m.Groups[2]
	}
	hour, minute, meridiem, err := clockFromGroups(m.Groups[0], m.Groups[1], mer)
	if err != nil {
		return Resolved{}, err
	}

	target := nextClockTime(now, hour, minute)
	return Resolved{
		Kind:           m.Kind,
		TargetTime:     target,
		CronExpression: oneShotExpr(target),
		Ambiguous:      meridiem == "" && hour >= 1 && hour <= 12,
	}, nil
}

// clockFromGroups parses captured hour/minute/meridiem strings. The hour is
// normalized to 24h space: "12am" is hour 0, "12pm" stays 12, other pm
// hours gain 12. Without a meridiem the hour is taken as given.
func clockFromGroups(hourStr, minuteStr, meridiem string) (hour, minute int, mer string, err error) {
	hour, err = strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid hour %q", hourStr)
	}
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil {
			return 0, 0, "", fmt.Errorf("invalid minute %q", minuteStr)
		}
	}

	mer = strings.ToLower(meridiem)
	switch mer {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, "", fmt.Errorf("hour %d out of 12h range", hour)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, "", fmt.Errorf("hour %d out of 12h range", hour)
		}
		if hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, "", fmt.Errorf("clock time %d:%02d out of range", hour, minute)
	}
	return hour, minute, mer, nil
}

// nextClockTime returns today at hour:minute if that is still in the
// future, otherwise tomorrow at the same clock time.
func nextClockTime(now time.Time, hour, minute int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// oneShotExpr pins a single calendar instant: second 0, plus the minute,
// hour, day and month of t, with the weekday left open.
func oneShotExpr(t time.Time) string {
	return fmt.Sprintf("0 %d %d %d %d *", t.Minute(), t.Hour(), t.Day(), int(t.Month()))
}
