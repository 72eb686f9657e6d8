package workflow

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const dockerSample = `Step 1/4 : FROM golang:1.22 AS builder
Step 2/4 : RUN go build ./...
The command '/bin/sh -c go build ./...' returned a non-zero code: 1
`

func TestDockerBuildParseWorkflowLog(t *testing.T) {
	p := NewDockerBuildParser()
	if !p.CanParse(dockerSample) {
		t.Fatal("expected detection")
	}
	evs, err := p.ParseWorkflowLog(dockerSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var found bool
	for _, we := range evs {
		if we.Event.Status == events.StatusError {
			found = true
			if we.Event.Group != "builder" {
				t.Errorf("expected stage 'builder' carried onto the error event, got %q", we.Event.Group)
			}
		}
	}
	if !found {
		t.Errorf("expected a build error event, got %+v", evs)
	}
}
