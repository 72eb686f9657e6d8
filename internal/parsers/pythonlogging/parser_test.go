package pythonlogging

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `2024-01-01 10:00:00,123 INFO:myapp.server:listening on :8080
2024-01-01 10:00:01,456 ERROR:myapp.db:connection refused
WARNING:myapp.cache:cache miss rate high
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(evs), evs)
	}
	if evs[1].Status != events.StatusError || evs[1].FunctionName != "myapp.db" {
		t.Errorf("mismatch: %+v", evs[1])
	}
	if evs[2].Status != events.StatusWarning || evs[2].Severity != "warning" {
		t.Errorf("expected warning severity, got %+v", evs[2])
	}
}
