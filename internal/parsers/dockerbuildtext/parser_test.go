package dockerbuildtext

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `Step 1/5 : FROM golang:1.22
Step 2/5 : RUN go build ./...
The command '/bin/sh -c go build ./...' returned a non-zero code: 1
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
	last := evs[2]
	if last.Status != events.StatusError || last.ErrorCode != "1" {
		t.Errorf("expected build error with code 1, got %+v", last)
	}
	if last.Category != "RUN go build ./..." {
		t.Errorf("expected failing step context carried, got %q", last.Category)
	}
}
