package enrich

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

func TestFilterAndRenumber(t *testing.T) {
	evs := []events.ValidationEvent{
		{EventID: 1, ToolName: "eslint", Severity: "info"},
		{EventID: 2, ToolName: "eslint", Severity: "error"},
		{EventID: 3, ToolName: "eslint", Severity: "warning"},
	}

	out := FilterAndRenumber(evs, events.SeverityWarning)
	if len(out) != 2 {
		t.Fatalf("expected 2 retained events, got %d", len(out))
	}
	if out[0].EventID != 1 || out[1].EventID != 2 {
		t.Errorf("expected renumbered ids 1,2; got %d,%d", out[0].EventID, out[1].EventID)
	}
	if out[0].Severity != "error" || out[1].Severity != "warning" {
		t.Errorf("expected relative order preserved, got %q then %q", out[0].Severity, out[1].Severity)
	}
}

func TestFilterAndRenumberDebugThresholdRetainsAll(t *testing.T) {
	evs := []events.ValidationEvent{
		{EventID: 1, ToolName: "ruff", Severity: "debug"},
		{EventID: 2, ToolName: "ruff", Severity: "critical"},
	}
	out := FilterAndRenumber(evs, events.SeverityDebug)
	if len(out) != 2 {
		t.Fatalf("expected all events retained at debug threshold, got %d", len(out))
	}
}
