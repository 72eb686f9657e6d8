// Package lintr implements the JSON-root parser for R's lintr package
// JSON output (spec §4.4): a flat array of lint objects keyed by
// filename/line_number/column_number/linter/message/type.
package lintr

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "lintr"
	priority   = parser.PriorityVeryHigh
)

type lint struct {
	Filename     string `json:"filename"`
	LineNumber   int    `json:"line_number"`
	ColumnNumber int    `json:"column_number"`
	Linter       string `json:"linter"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	Line         string `json:"line"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("lintr%json%"), parser.Like("%lint_results%.json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"linter"`) || !strings.Contains(content, `"line_number"`) {
		return false
	}
	var lints []lint
	return json.Unmarshal([]byte(trimmed), &lints) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var lints []lint
	if err := json.Unmarshal([]byte(trimmed), &lints); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(lints) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(lints))
	for _, l := range lints {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = l.Filename
		ev.RefLine = sentinelIfZero(l.LineNumber)
		ev.RefColumn = sentinelIfZero(l.ColumnNumber)
		ev.ErrorCode = l.Linter
		ev.Message = l.Message
		ev.Category = "style"
		if l.Line != "" {
			ev.Suggestion = "Code: " + l.Line
		}
		status, sev := severityFromType(l.Type)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromType(t string) (events.EventStatus, string) {
	switch strings.ToLower(t) {
	case "error":
		return events.StatusError, events.SeverityError.String()
	case "warning", "style":
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
