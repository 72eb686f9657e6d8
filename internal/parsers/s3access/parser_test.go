package s3access

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `my-bucket alice 203.0.113.5 - [01/Aug/2026:10:00:00 +0000] "GET /my-bucket/private.txt HTTP/1.1" 403 AccessDenied 243
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(evs), evs)
	}
	e := evs[0]
	if e.Target != "my-bucket" || e.Origin != "203.0.113.5" || e.ErrorCode != "403" {
		t.Errorf("field extraction mismatch: %+v", e)
	}
	if e.Status != events.StatusError {
		t.Errorf("expected 403 to classify as error, got %v", e.Status)
	}
}
