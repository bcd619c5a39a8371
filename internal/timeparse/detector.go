package timeparse

import "strings"

// Match is the result of a successful detection: which pattern fired and
// what it captured. It is produced and consumed within one resolution pass.
type Match struct {
	Family Family
	Kind   Kind
	Groups []string // capture groups, raw as matched
	Text   string   // the full matched substring
}

// Strip returns message with the matched time phrase removed, so that
// action extraction never picks the time expression up as part of the
// action.
func (m Match) Strip(message string) string {
	return strings.Replace(message, m.Text, "", 1)
}

// Detector applies the catalog against input text.
type Detector struct {
	catalog *Catalog
}

func NewDetector(catalog *Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// Detect scans message for a time expression. Patterns are tried in family
// precedence order (relative, recurring, absolute) and the first match
// wins; there is no backtracking across families. A false return means "no
// scheduling intent", which is a normal negative result, not an error.
func (d *Detector) Detect(message string) (Match, bool) {
	for _, p := range d.catalog.patterns {
		sub := p.re.FindStringSubmatch(message)
		if sub == nil {
			continue
		}
		return Match{
			Family: p.Family,
			Kind:   p.Kind,
			Groups: sub[1:],
			Text:   sub[0],
		}, true
	}
	return Match{}, false
}
