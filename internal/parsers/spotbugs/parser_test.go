package spotbugs

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `{"bugs":[{"type":"SIC_INNER_SHOULD_BE_STATIC","priority":1,"category":"PERFORMANCE","file":"App.java","line":42,"message":"Should be a static inner class"}]}`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 || evs[0].ErrorCode != "SIC_INNER_SHOULD_BE_STATIC" {
		t.Fatalf("mismatch: %+v", evs)
	}
	if evs[0].Severity != "critical" {
		t.Fatalf("expected critical severity for priority 1, got %q", evs[0].Severity)
	}
}

func TestEmptyBugsYieldsSummary(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`{"bugs":[]}`)
	if len(evs) != 1 || evs[0].Status != events.StatusPass {
		t.Fatalf("expected single pass summary event, got %+v", evs)
	}
}
