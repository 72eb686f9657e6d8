package parser

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

func TestMapLevelToSeverity(t *testing.T) {
	cases := []struct {
		raw          string
		wantStatus   events.EventStatus
		wantSeverity string
	}{
		{"ERROR", events.StatusError, "error"},
		{"WARN", events.StatusWarning, "warning"},
		{"warning", events.StatusWarning, "warning"},
		{"PANIC", events.StatusError, "critical"},
		{"fatal error occurred", events.StatusError, "critical"},
		{"test passed", events.StatusPass, "info"},
		{"SKIPPED", events.StatusSkip, "info"},
		{"some debug line", events.StatusInfo, "info"},
	}
	for _, c := range cases {
		status, sev := MapLevelToSeverity(c.raw)
		if status != c.wantStatus || sev != c.wantSeverity {
			t.Errorf("MapLevelToSeverity(%q) = (%v, %q), want (%v, %q)",
				c.raw, status, sev, c.wantStatus, c.wantSeverity)
		}
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[31merror\x1b[0m: bad thing"
	want := "error: bad thing"
	if got := StripANSI(in); got != want {
		t.Errorf("StripANSI = %q, want %q", got, want)
	}
	if got := StripANSI("plain text"); got != "plain text" {
		t.Errorf("StripANSI should be a no-op on plain text, got %q", got)
	}
}

func TestMatchRatioRequiresThird(t *testing.T) {
	content := "a\nb\nc\nmatch\nmatch\nmatch\n"
	match := func(s string) bool { return s == "match" }
	if !MatchRatio(content, 10, match) {
		t.Error("3 of 6 lines matching should pass the 1/3 threshold")
	}

	sparse := "a\nb\nc\nd\nmatch\n"
	if MatchRatio(sparse, 10, match) {
		t.Error("1 of 5 lines matching should not pass the 1/3 threshold")
	}
}
