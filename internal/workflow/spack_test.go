package workflow

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const spackSample = `==> zlib@1.3: Executing phase: 'build'
==> [2026-08-01-10:00:00.123456] 'make' '-j4'
make: Nothing to be done for 'all'.
==> zlib@1.3: Executing phase: 'install'
==> Error: Install failed for zlib
`

func TestSpackDelegationAndError(t *testing.T) {
	p := NewSpackParser(func(cmd string) parser.ToolParser {
		if cmd == "make" {
			return fakeCommandParser{}
		}
		return nil
	})
	if !p.CanParse(spackSample) {
		t.Fatal("expected detection")
	}
	evs, err := p.ParseWorkflowLog(spackSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unitIDsAtLevel3 := map[string]bool{}
	for _, we := range evs {
		if we.HierarchyLevel == 3 {
			unitIDsAtLevel3[we.Event.UnitID] = true
		}
	}

	var delegated, errored bool
	for _, we := range evs {
		if we.Event.ToolName == "fake-delegated" {
			delegated = true
			if we.HierarchyLevel != 4 {
				t.Errorf("expected delegated event at hierarchy level 4, got %d", we.HierarchyLevel)
			}
			if we.Event.Group != "zlib@1.3" || we.Event.Unit != "build" {
				t.Errorf("expected delegated event to inherit enclosing package/phase context, got Group=%q Unit=%q", we.Event.Group, we.Event.Unit)
			}
			if !unitIDsAtLevel3[we.ParentID] {
				t.Errorf("expected delegated event's parent_id %q to match a preceding hierarchy_level=3 event's unit_id", we.ParentID)
			}
		}
		if we.Event.Status == events.StatusError && we.Event.Message == "Install failed for zlib" {
			errored = true
		}
	}
	if !delegated {
		t.Error("expected delegated make event")
	}
	if !errored {
		t.Errorf("expected install failure event, got %+v", evs)
	}
}
