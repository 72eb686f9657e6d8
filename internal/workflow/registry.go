// Package workflow holds the pipeline-transcript (workflow-engine)
// parsers and the registry that selects among them — the hierarchical
// counterpart to internal/registry's flat tool parsers.
package workflow

import (
	"sort"
	"sync"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

// Registry holds the set of WorkflowParser implementations, sorted by
// descending priority, mirroring internal/registry.Registry's shape.
type Registry struct {
	mu      sync.RWMutex
	parsers []parser.WorkflowParser
	byName  map[string]parser.WorkflowParser
}

func New() *Registry {
	return &Registry{byName: map[string]parser.WorkflowParser{}}
}

func (r *Registry) Register(p parser.WorkflowParser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers = append(r.parsers, p)
	r.byName[p.FormatName()] = p
	sort.SliceStable(r.parsers, func(i, j int) bool {
		return r.parsers[i].Priority() > r.parsers[j].Priority()
	})
}

// FindParser returns the highest-priority workflow parser whose CanParse
// accepts content, or nil if none recognize it.
func (r *Registry) FindParser(content string) parser.WorkflowParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.parsers {
		if p.CanParse(content) {
			return p
		}
	}
	return nil
}

// GetParser looks up a workflow parser by its exact format name, as used
// by dispatch's explicit-format routing path.
func (r *Registry) GetParser(formatName string) parser.WorkflowParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[formatName]
}

func (r *Registry) Parsers() []parser.WorkflowParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]parser.WorkflowParser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

func (r *Registry) ParserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parsers)
}

// Flatten assigns final EventIDs to a tree of WorkflowEvents in
// depth-first preorder and returns the flat []ValidationEvent slice
// dispatch hands off to enrichment. Workflow parsers build their event
// list already in the order they want flattened (hierarchy fields are
// set per-event as the parser walks the transcript), so Flatten only
// needs to stamp IDs, not reorder. JobOrder/JobName are ZIP-specific and
// are expected to already be set on the embedded Event by whichever
// parser cares about them (only the GitHub Actions ZIP wrapper does);
// Flatten leaves them untouched so it never has to guess whether a zero
// value means "unset" or "first job".
func Flatten(wevents []parser.WorkflowEvent) []events.ValidationEvent {
	out := make([]events.ValidationEvent, 0, len(wevents))
	var id int64 = 1
	for _, we := range wevents {
		ev := we.Event
		ev.EventID = id
		ev.WorkflowType = we.WorkflowType
		ev.HierarchyLevel = we.HierarchyLevel
		ev.ParentID = we.ParentID
		out = append(out, ev)
		id++
	}
	return out
}
