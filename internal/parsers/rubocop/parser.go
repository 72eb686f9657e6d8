// Package rubocop implements the JSON-root parser for `rubocop --format
// json` output (spec §4.4): a "files" array, each holding an "offenses"
// array keyed by severity/message/cop_name/location.
//
// original_source/src/parsers has no dedicated rubocop parser to ground
// this on (grep for "rubocop" across the index turns up nothing), so
// this package instead follows the JSON-root shape the eslint and
// bandit parsers already establish in this tree, adapted to RuboCop's
// actual `--format json` schema.
package rubocop

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "rubocop"
	priority   = parser.PriorityVeryHigh
)

type location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type offense struct {
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	CopName  string   `json:"cop_name"`
	Location location `json:"location"`
}

type fileEntry struct {
	Path     string    `json:"path"`
	Offenses []offense `json:"offenses"`
}

type report struct {
	Files []fileEntry `json:"files"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("rubocop%--format json%"), parser.Like("rubocop%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"offenses"`) || !strings.Contains(content, `"cop_name"`) {
		return false
	}
	var r report
	return json.Unmarshal([]byte(trimmed), &r) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var r report
	if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}

	var out []events.ValidationEvent
	for _, f := range r.Files {
		if len(f.Offenses) == 0 {
			ev := events.MakeEvent(formatName, events.EventTypeSummary)
			ev.RefFile = f.Path
			ev.Message = "no lint issues"
			events.ApplyStatusSeverity(&ev, events.StatusPass, "")
			out = append(out, ev)
			continue
		}
		for _, o := range f.Offenses {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = f.Path
			ev.RefLine = sentinelIfZero(o.Location.Line)
			ev.RefColumn = sentinelIfZero(o.Location.Column)
			ev.ErrorCode = o.CopName
			ev.Message = o.Message
			ev.Category = "ruby_style"
			status, sev := severityFromRubocop(o.Severity)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// RuboCop's severities: refactor, convention, warning, error, fatal.
func severityFromRubocop(sev string) (events.EventStatus, string) {
	switch strings.ToLower(sev) {
	case "fatal", "error":
		return events.StatusError, events.SeverityError.String()
	case "warning":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

func sentinelIfZero(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ parser.ToolParser = (*Parser)(nil)
