// Package registry implements the priority-ordered tool parser registry
// (spec §4.3): a sorted collection of parser.ToolParser instances with
// content-based and command-based lookup. Grounded on
// handleui-detent/packages/core/tools/registry.go's Registry type, with
// the extension-based fast path generalized to a format-name fast path
// (tool output formats don't carry a file extension the way language
// compiler errors do).
package registry

import (
	"sort"
	"sync"

	"github.com/logvalidate/core/internal/parser"
)

// Registry holds tool-output parsers in priority-descending order.
// Lookups are read-only once RegisterAllParsers has populated it; the
// mutex protects the registration window itself (spec §5).
type Registry struct {
	mu      sync.RWMutex
	parsers []parser.ToolParser
	byName  map[string]parser.ToolParser
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{byName: make(map[string]parser.ToolParser)}
}

// Register adds a parser and keeps the internal slice sorted by
// descending priority. Stable sort preserves registration order as the
// tie-break within a priority band, per spec §4.3.
func (r *Registry) Register(p parser.ToolParser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parsers = append(r.parsers, p)
	r.byName[p.FormatName()] = p

	sort.SliceStable(r.parsers, func(i, j int) bool {
		return r.parsers[i].Priority() > r.parsers[j].Priority()
	})
}

// FindParser returns the first parser (in priority-descending order)
// whose CanParse reports true for content, or nil if none match.
func (r *Registry) FindParser(content string) parser.ToolParser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.parsers {
		if p.CanParse(content) {
			return p
		}
	}
	return nil
}

// GetParser returns the parser registered under the given format name, or
// nil if none matches.
func (r *Registry) GetParser(formatName string) parser.ToolParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[formatName]
}

// FindParserByCommand returns the highest-priority registered parser one
// of whose CommandPatterns matches command, used by workflow delegation
// (spec §4.5). Ties are broken by priority then registration order,
// which the already priority-sorted slice gives us for free by returning
// the first match.
func (r *Registry) FindParserByCommand(command string) parser.ToolParser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.parsers {
		for _, cp := range p.CommandPatterns() {
			if cp.Match(command) {
				return p
			}
		}
	}
	return nil
}

// Parsers returns a copy of the registered parsers in priority order.
func (r *Registry) Parsers() []parser.ToolParser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]parser.ToolParser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// ParserCount reports how many parsers are registered, letting a caller
// verify bootstrap ran (spec §6).
func (r *Registry) ParserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parsers)
}
