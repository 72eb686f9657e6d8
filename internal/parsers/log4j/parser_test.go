package log4j

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `2024-01-01 10:00:00,123 [main] INFO com.example.App - starting up
2024-01-01 10:00:01,456 [pool-1-thread-3] ERROR com.example.db.Pool - connection timed out
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[1].Status != events.StatusError || evs[1].FunctionName != "com.example.db.Pool" {
		t.Errorf("mismatch: %+v", evs[1])
	}
	if evs[1].Category != "thread:pool-1-thread-3" {
		t.Errorf("expected thread captured, got %q", evs[1].Category)
	}
}
