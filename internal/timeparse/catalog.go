package timeparse

import "regexp"

// Family is the top-level classification of a detected time expression.
type Family int

const (
	FamilyRelative Family = iota
	FamilyRecurring
	FamilyAbsolute
)

func (f Family) String() string {
	switch f {
	case FamilyRelative:
		return "relative"
	case FamilyRecurring:
		return "recurring"
	case FamilyAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// Kind is the specific sub-pattern within a family.
type Kind string

const (
	KindRelativeMinutes Kind = "relative_minutes"
	KindRelativeHours   Kind = "relative_hours"
	KindRelativeDays    Kind = "relative_days"
	KindDaily           Kind = "daily"
	KindWeekly          Kind = "weekly"
	KindHourly          Kind = "hourly"
	KindAbsolute12h     Kind = "absolute_12h"
	KindAbsolute24h     Kind = "absolute_24h"
)

// Pattern associates one recognized phrasing with its family and kind.
type Pattern struct {
	Family Family
	Kind   Kind
	re     *regexp.Regexp
}

type actionPattern struct {
	re *regexp.Regexp
	// template renders the action; "%s" is replaced by the first capture
	// group. A template without "%s" is a constant action.
	template string
}

// Catalog is the immutable table of recognized temporal and action
// phrasings. Construct it once at startup and share it; it is never
// mutated after construction.
type Catalog struct {
	patterns []Pattern
	actions  []actionPattern
}

const weekdayAlternation = `sunday|sun|monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thu|friday|fri|saturday|sat`

// NewCatalog builds the default pattern catalog. Detection precedence is
// RELATIVE, then RECURRING, then ABSOLUTE; within a family the declaration
// order below decides which pattern wins.
func NewCatalog() *Catalog {
	return &Catalog{
		patterns: []Pattern{
			{FamilyRelative, KindRelativeMinutes, regexp.MustCompile(`(?i)\bin\s+(\d+)\s+min(?:ute)?s?\b`)},
			{FamilyRelative, KindRelativeHours, regexp.MustCompile(`(?i)\bin\s+(\d+)\s+h(?:ou)?rs?\b`)},
			{FamilyRelative, KindRelativeDays, regexp.MustCompile(`(?i)\bin\s+(\d+)\s+days?\b`)},

			{FamilyRecurring, KindDaily, regexp.MustCompile(`(?i)\b(?:daily|every\s+day)\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)},
			{FamilyRecurring, KindWeekly, regexp.MustCompile(`(?i)\bevery\s+(` + weekdayAlternation + `)\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)},
			{FamilyRecurring, KindHourly, regexp.MustCompile(`(?i)\b(?:every\s+hour|hourly)\b`)},

			{FamilyAbsolute, KindAbsolute12h, regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)},
			{FamilyAbsolute, KindAbsolute24h, regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\b`)},
		},
		actions: []actionPattern{
			{regexp.MustCompile(`(?i)\bwake\s+me(?:\s+up)?\b`), "wake-up"},
			{regexp.MustCompile(`(?i)\bremind\s+me\s+to\s+(.+)`), "%s"},
			{regexp.MustCompile(`(?i)\bgive\s+me\s+a\s+report\s+(?:on|about)\s+(.+)`), "report on %s"},
			{regexp.MustCompile(`(?i)\bcheck\s+(.+)`), "check %s"},
			{regexp.MustCompile(`(?i)\b(?:to|about|regarding)\s+(.+)`), "%s"},
		},
	}
}

// Patterns returns the temporal patterns in detection order.
func (c *Catalog) Patterns() []Pattern {
	return c.patterns
}
