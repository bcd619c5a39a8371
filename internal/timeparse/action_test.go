package timeparse

import "testing"

func TestExtract(t *testing.T) {
	e := NewExtractor(NewCatalog())

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"remind me to", "Remind me to check the oven", "check the oven"},
		{"wake phrase", "Wake me up ", "wake-up"},
		{"wake without up", "wake me at dawn", "wake-up"},
		{"report", "give me a report on sales", "report on sales"},
		{"check", "Check emails ", "check emails"},
		{"trailing about", "ping me about the deploy", "the deploy"},
		{"trailing regarding", "a note regarding the invoice", "the invoice"},
		{"fallback", "hello world", FallbackAction},
		{"empty", "", FallbackAction},
		{"trailing punctuation", "remind me to stretch!", "stretch"},
		{"collapses whitespace", "Remind me  to  water   the plants", "water the plants"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Extract(tc.message); got != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

// remind-me-to outranks the bare check pattern when both could fire.
func TestExtractOrder(t *testing.T) {
	e := NewExtractor(NewCatalog())

	if got := e.Extract("remind me to check the logs"); got != "check the logs" {
		t.Errorf("Extract = %q, want %q", got, "check the logs")
	}
}

// Extraction runs on the message with the time phrase stripped, so the
// action never contains the schedule.
func TestExtractAfterStrip(t *testing.T) {
	d := NewDetector(NewCatalog())
	e := NewExtractor(NewCatalog())

	message := "Check emails every hour"
	m, ok := d.Detect(message)
	if !ok {
		t.Fatal("no match")
	}
	if got := e.Extract(m.Strip(message)); got != "check emails" {
		t.Errorf("Extract = %q, want %q", got, "check emails")
	}
}
