// Package events defines the unified ValidationEvent record that every
// parser in this module projects into, along with the small set of
// enumerations shared across all of them.
package events

// ValidationEvent is the single row type produced by every parser. All
// fields are present on every event; unset values use the sentinels
// documented on each field instead of a language-level "absent" marker so
// that a fixed-width downstream schema (see internal/bind) never has to
// reason about per-field presence.
type ValidationEvent struct {
	// Identity & provenance
	EventID   int64     // monotonically assigned, unique within one parse call, >0
	ToolName  string    // short identifier of the producing parser, e.g. "eslint"
	EventType EventType // tagged variant, see EventType
	Category  string    // free-form subclass, e.g. "compilation", "shell_script"

	// Code location
	RefFile      string
	RefLine      int // 1-indexed, -1 = absent
	RefColumn    int // 1-indexed, -1 = absent
	FunctionName string

	// Classification
	Status    EventStatus
	Severity  string // one of SeverityLevel's strings, or a tool-specific string
	ErrorCode string // rule/check identifier

	// Content
	Message        string
	Suggestion     string
	LogContent     string // original offending line or JSON record
	StructuredData string // well-formed JSON when non-empty

	// Log tracking
	LogLineStart int // 1-indexed, -1 = absent
	LogLineEnd   int // 1-indexed, -1 = absent

	// Test-specific
	TestName      string
	ExecutionTime float64 // seconds, 0.0 = absent

	// Identity & network
	Principal string
	Origin    string
	Target    string
	ActorType string

	// Temporal / correlation
	StartedAt  string // format preserved verbatim from source
	ExternalID string

	// Hierarchical context (workflow dimension)
	Scope       string
	ScopeID     string
	ScopeStatus string

	Group       string
	GroupID     string
	GroupStatus string

	Unit       string
	UnitID     string
	UnitStatus string

	Subunit   string
	SubunitID string

	WorkflowType   string
	HierarchyLevel int    // 0=workflow, 1=job, 2=step, 3=step-line, 4=delegated-tool-event
	ParentID       string // id of the immediately enclosing hierarchy element

	// Pattern analysis placeholders
	Fingerprint      string
	SimilarityScore  float64
	PatternID        int64 // -1 = absent

	// ZIP archive metadata (GitHub Actions ZIP downloads)
	JobOrder int // from filename prefix, -1 = absent
	JobName  string
}

// MakeEvent returns a ValidationEvent with every sentinel default applied,
// ready for a parser to fill in the fields it cares about.
func MakeEvent(toolName string, eventType EventType) ValidationEvent {
	return ValidationEvent{
		ToolName:       toolName,
		EventType:      eventType,
		RefLine:        -1,
		RefColumn:      -1,
		LogLineStart:   -1,
		LogLineEnd:     -1,
		PatternID:      -1,
		JobOrder:       -1,
		HierarchyLevel: 0,
		Status:         StatusInfo,
		Severity:       SeverityInfo.String(),
	}
}
