// Package parser defines the contracts every leaf and workflow parser in
// this module implements, plus the small set of helpers (severity
// mapping, command-pattern matching, line iteration) that every
// implementation shares instead of repeating.
package parser

import "github.com/logvalidate/core/internal/events"

// Priority bands, matching the ranges leaf parsers are expected to fall
// into. Dispatch only cares about the numeric value; these constants
// exist so parser packages can anchor themselves to a documented band
// instead of picking an arbitrary number.
const (
	PriorityVeryHigh = 150 // unambiguous JSON shapes (ESLint, Ruff, ...)
	PriorityHigh     = 80  // specific text formats (Log4j, Pino, ...)
	PriorityMedium   = 50  // common textual logs
	PriorityLow      = 20  // last-resort fallbacks
)

// ToolParser is the contract every tool-output parser implements.
type ToolParser interface {
	// CanParse is a fast heuristic over the whole content string. It must
	// be cheap: substring scans or a tiny regex over the first lines.
	CanParse(content string) bool

	// Parse performs a full parse and returns every event it can find.
	// It must never panic on malformed input and returns an empty slice
	// (not an error) when nothing recognizable is present.
	Parse(content string) ([]events.ValidationEvent, error)

	// ParseWithContext is the context-aware variant; parsers that don't
	// need host context should have it delegate to Parse.
	ParseWithContext(ctx *Context, content string) ([]events.ValidationEvent, error)

	// RequiresContext reports whether ParseWithContext needs a non-nil
	// Context to do useful work.
	RequiresContext() bool

	FormatName() string
	Name() string
	Category() string // coarse grouping, e.g. "linting_tool", "test_framework"
	Priority() int     // higher wins during dispatch

	// CommandPatterns lists the shell-command signatures that identify
	// this parser as the right one to delegate a workflow step to.
	// Most parsers return nil.
	CommandPatterns() []CommandPattern
}

// Context carries host information a parser may need beyond the raw
// content string (currently unused by any bundled parser, but part of the
// contract per spec so a future parser can require it via
// RequiresContext).
type Context struct {
	SourcePath string
}
