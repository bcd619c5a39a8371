package timeparse

import "strings"

// FallbackAction is returned when no action phrase can be found.
const FallbackAction = "general reminder"

// Extractor pulls the action phrase (what the job should do) out of a
// message. It is independent of time detection: callers typically pass the
// message with the matched time phrase already stripped (Match.Strip), but
// any string works.
type Extractor struct {
	catalog *Catalog
}

func NewExtractor(catalog *Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Extract returns the action phrase for message. It tries the explicit
// action-context patterns first, then the trailing to/about/regarding
// clause, and finally falls back to FallbackAction.
func (e *Extractor) Extract(message string) string {
	for _, p := range e.catalog.actions {
		sub := p.re.FindStringSubmatch(message)
		if sub == nil {
			continue
		}
		rendered := p.template
		if strings.Contains(p.template, "%s") {
			rendered = strings.Replace(p.template, "%s", sub[1], 1)
		}
		if action := cleanAction(rendered); action != "" {
			return action
		}
	}
	return FallbackAction
}

// cleanAction lowercases and trims an extracted phrase.
func cleanAction(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, ".,!?;: ")
}
