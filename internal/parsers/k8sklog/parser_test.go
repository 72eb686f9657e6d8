package k8sklog

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `I0801 10:00:00.123456       1 controller.go:142] Starting reconcile loop
E0801 10:00:01.654321       1 controller.go:190] failed to sync: connection refused
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(evs), evs)
	}
	if evs[1].Status != events.StatusError || evs[1].RefFile != "controller.go" || evs[1].RefLine != 190 {
		t.Errorf("mismatch: %+v", evs[1])
	}
}
