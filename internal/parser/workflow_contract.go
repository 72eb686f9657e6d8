package parser

import "github.com/logvalidate/core/internal/events"

// WorkflowEvent wraps a ValidationEvent with the hierarchy bookkeeping a
// workflow parser assigns as it walks a pipeline/job/step tree. It exists
// as a distinct type from ValidationEvent because workflow parsers build
// the tree before they know final event IDs; internal/workflow flattens a
// []WorkflowEvent into the final []ValidationEvent, assigning IDs in
// depth-first preorder.
type WorkflowEvent struct {
	Event          events.ValidationEvent
	WorkflowType   string
	HierarchyLevel int
	ParentID       string

	// ZIP archive metadata, set only by the GitHub Actions ZIP wrapper.
	JobOrder int
	JobName  string
}

// WorkflowParser is the contract every workflow-engine (pipeline
// transcript) parser implements. It mirrors ToolParser but returns a
// hierarchical []WorkflowEvent instead of a flat []ValidationEvent.
type WorkflowParser interface {
	CanParse(content string) bool
	ParseWorkflowLog(content string) ([]WorkflowEvent, error)

	FormatName() string
	Name() string
	Priority() int

	// CreateBaseEvent returns a ValidationEvent pre-populated with the
	// sentinel defaults and this parser's tool name, ready for the
	// workflow parser to fill in hierarchy and content fields.
	CreateBaseEvent(eventType events.EventType) events.ValidationEvent

	// ExtractTimestamp returns the first timestamp substring in a known
	// format found in a transcript line, verbatim (never reformatted),
	// or "" if no known format matches.
	ExtractTimestamp(line string) string

	// DetermineSeverity maps freeform status/message text to a
	// (status, severity) pair using the shared MapLevelToSeverity table.
	DetermineSeverity(statusOrMessage string) (events.EventStatus, string)
}

// BaseWorkflowParser centralizes CreateBaseEvent/DetermineSeverity so
// each workflow parser only needs to embed it and supply the toolName
// used to stamp events.
type BaseWorkflowParser struct {
	ToolName string
}

func (b BaseWorkflowParser) CreateBaseEvent(eventType events.EventType) events.ValidationEvent {
	return events.MakeEvent(b.ToolName, eventType)
}

func (b BaseWorkflowParser) ExtractTimestamp(line string) string {
	return ExtractTimestamp(line)
}

func (b BaseWorkflowParser) DetermineSeverity(statusOrMessage string) (events.EventStatus, string) {
	return MapLevelToSeverity(statusOrMessage)
}
