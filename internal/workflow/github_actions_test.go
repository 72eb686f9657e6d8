package workflow

import (
	"strings"
	"testing"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const gaSample = `##[group]Run tests
##[command]go test ./...
ok example.com/pkg 0.01s
##[error]tests failed
##[endgroup]
`

func TestGithubActionsParseWorkflowLog(t *testing.T) {
	p := NewGithubActionsParser(nil)
	if !p.CanParse(gaSample) {
		t.Fatal("expected detection")
	}
	evs, err := p.ParseWorkflowLog(gaSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) < 2 {
		t.Fatalf("expected at least a step-start and an error event, got %d: %+v", len(evs), evs)
	}
	foundError := false
	for _, we := range evs {
		if we.Event.Status == events.StatusError {
			foundError = true
		}
	}
	if !foundError {
		t.Error("expected an Error event from ##[error] annotation")
	}
}

const gaDelegateSample = `##[group]Lint
##[command]eslint --format=json src/
[ ... eslint output here ... ]
##[endgroup]
`

func TestGithubActionsDelegation(t *testing.T) {
	p := NewGithubActionsParser(func(cmd string) parser.ToolParser {
		f := fakeCommandParser{}
		for _, cp := range f.CommandPatterns() {
			if cp.Match(cmd) {
				return f
			}
		}
		return nil
	})
	evs, err := p.ParseWorkflowLog(gaDelegateSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unitIDsAtLevel3 := map[string]bool{}
	for _, we := range evs {
		if we.HierarchyLevel == 3 {
			unitIDsAtLevel3[we.Event.UnitID] = true
		}
	}

	var delegated bool
	for _, we := range evs {
		if we.Event.ToolName != "fake-delegated" {
			continue
		}
		delegated = true
		if we.HierarchyLevel != 4 {
			t.Errorf("expected delegated event at hierarchy level 4, got %d", we.HierarchyLevel)
		}
		if we.Event.Unit != "Lint" || we.Event.UnitID != "step-1" {
			t.Errorf("expected delegated event to inherit enclosing step context, got Unit=%q UnitID=%q", we.Event.Unit, we.Event.UnitID)
		}
		if !strings.Contains(we.Event.StructuredData, "fake-delegated") {
			t.Errorf("expected structured_data to record the delegated format, got %q", we.Event.StructuredData)
		}
		if !unitIDsAtLevel3[we.ParentID] {
			t.Errorf("expected delegated event's parent_id %q to match a preceding hierarchy_level=3 event's unit_id", we.ParentID)
		}
	}
	if !delegated {
		t.Error("expected delegated eslint event")
	}
}
