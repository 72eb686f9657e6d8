package workflow

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const droneSample = `+ go build ./...
+ go test ./...
--- FAIL: TestAdd (0.00s)
exec: "go": exit status 1
`

func TestDroneParseWorkflowLog(t *testing.T) {
	p := NewDroneParser()
	if !p.CanParse(droneSample) {
		t.Fatal("expected detection")
	}
	evs, err := p.ParseWorkflowLog(droneSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, we := range evs {
		if we.Event.Status == events.StatusError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error event from exit status 1, got %+v", evs)
	}
}
