// Package bind implements the boundary adapter (spec.md §4.8): resolving
// a host-supplied `source` argument to literal content, and projecting
// []ValidationEvent into the 44-column output vector described in
// spec.md §6. The actual SQL table-function glue, extension loader, and
// S3/HTTP fetch are external collaborators; this package only does the
// resolution spec.md assigns to the module itself plus the column
// projection.
package bind

import (
	"os"
	"strings"

	"github.com/logvalidate/core/internal/apperrors"
	"github.com/logvalidate/core/internal/events"
)

// deferredSchemes are virtual URI schemes this module recognizes but
// does not fetch; a host embedding the pipeline is expected to resolve
// these itself and call Parse with the resulting content.
var deferredSchemes = []string{"zip://", "s3://", "http://", "https://"}

// Resolved is what ResolveSource hands back: either literal content
// ready to parse, or a path a caller should treat as a ZIP archive
// (routed to the GitHub Actions ZIP workflow parser rather than read as
// text).
type Resolved struct {
	Content string
	IsZip   bool
	ZipPath string
}

// ResolveSource implements spec.md §4.8's source resolution: an existing
// file is read whole, a recognized virtual URI scheme is deferred back
// to the caller, and anything else is treated as literal content.
func ResolveSource(source string) (Resolved, error) {
	if source == "" {
		return Resolved{}, apperrors.MissingSource()
	}

	for _, scheme := range deferredSchemes {
		if strings.HasPrefix(source, scheme) {
			return Resolved{}, &apperrors.Error{
				Category: apperrors.CategoryIO,
				Message:  "virtual URI scheme must be resolved by the host filesystem abstraction",
				Path:     source,
			}
		}
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return Resolved{Content: source}, nil
		}
		return Resolved{}, apperrors.IO(source, err)
	}
	if info.IsDir() {
		return Resolved{}, apperrors.IO(source, os.ErrInvalid)
	}

	if strings.HasSuffix(strings.ToLower(source), ".zip") {
		return Resolved{IsZip: true, ZipPath: source}, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return Resolved{}, apperrors.IO(source, err)
	}
	return Resolved{Content: string(data)}, nil
}

// column is one output slot of the 44-column projection (spec.md §6).
// Value carries the Go-native value; IsNull is set once the
// sentinel-to-null rule for that column's type has been applied.
type column struct {
	Name   string
	Value  any
	IsNull bool
}

func intCol(name string, v int, sentinel int) column {
	return column{Name: name, Value: v, IsNull: v == sentinel}
}

func neverNullIntCol(name string, v int) column {
	return column{Name: name, Value: v}
}

func floatCol(name string, v float64) column {
	return column{Name: name, Value: v, IsNull: v == 0.0}
}

func neverNullFloatCol(name string, v float64) column {
	return column{Name: name, Value: v}
}

func strCol(name string, v string) column {
	return column{Name: name, Value: v, IsNull: v == ""}
}

func neverNullStrCol(name string, v string) column {
	return column{Name: name, Value: v}
}

// Row is the 44-column projection of a single ValidationEvent, in the
// exact column order spec.md §6 assigns, ready for a host's output
// vector writer.
type Row []column

// Project converts one ValidationEvent into its 44-column Row,
// applying sentinel-to-null conversion per column.
func Project(ev events.ValidationEvent) Row {
	return Row{
		neverNullIntCol("event_id", int(ev.EventID)),
		neverNullStrCol("tool_name", ev.ToolName),
		neverNullStrCol("event_type", ev.EventType.String()),
		strCol("ref_file", ev.RefFile),
		intCol("ref_line", ev.RefLine, -1),
		intCol("ref_column", ev.RefColumn, -1),
		strCol("function_name", ev.FunctionName),
		neverNullStrCol("status", ev.Status.String()),
		neverNullStrCol("severity", ev.Severity),
		strCol("category", ev.Category),
		strCol("error_code", ev.ErrorCode),
		strCol("message", ev.Message),
		strCol("suggestion", ev.Suggestion),
		strCol("log_content", ev.LogContent),
		strCol("structured_data", ev.StructuredData),
		intCol("log_line_start", ev.LogLineStart, -1),
		intCol("log_line_end", ev.LogLineEnd, -1),
		strCol("test_name", ev.TestName),
		neverNullFloatCol("execution_time", ev.ExecutionTime),
		strCol("principal", ev.Principal),
		strCol("origin", ev.Origin),
		strCol("target", ev.Target),
		strCol("actor_type", ev.ActorType),
		strCol("started_at", ev.StartedAt),
		strCol("external_id", ev.ExternalID),
		strCol("scope", ev.Scope),
		strCol("scope_id", ev.ScopeID),
		strCol("scope_status", ev.ScopeStatus),
		strCol("group", ev.Group),
		strCol("group_id", ev.GroupID),
		strCol("group_status", ev.GroupStatus),
		strCol("unit", ev.Unit),
		strCol("unit_id", ev.UnitID),
		strCol("unit_status", ev.UnitStatus),
		strCol("subunit", ev.Subunit),
		strCol("subunit_id", ev.SubunitID),
		strCol("fingerprint", ev.Fingerprint),
		floatCol("similarity_score", ev.SimilarityScore),
		intCol("pattern_id", int(ev.PatternID), -1),
		strCol("workflow_type", ev.WorkflowType),
		neverNullIntCol("hierarchy_level", ev.HierarchyLevel),
		strCol("parent_id", ev.ParentID),
		intCol("job_order", ev.JobOrder, -1),
		strCol("job_name", ev.JobName),
	}
}

// ProjectAll projects every event, in order.
func ProjectAll(evs []events.ValidationEvent) []Row {
	rows := make([]Row, len(evs))
	for i, ev := range evs {
		rows[i] = Project(ev)
	}
	return rows
}
