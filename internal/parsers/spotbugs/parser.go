// Package spotbugs implements the JSON-root parser for SpotBugs' JSON
// export (spec §4.4). SpotBugs' native report is XML; this parser targets
// the simplified JSON shape produced by common CI wrappers
// (one flat "bugs" array of type/priority/file/line/message records).
package spotbugs

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "spotbugs"
	priority   = parser.PriorityVeryHigh
)

type bug struct {
	Type     string `json:"type"`
	Priority int    `json:"priority"` // 1=high, 2=normal, 3=low
	Category string `json:"category"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Message  string `json:"message"`
}

type report struct {
	Bugs []bug `json:"bugs"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "static_analysis" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("spotbugs%-json%"), parser.Like("spotbugs%.json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"bugs"`) || !strings.Contains(content, `"priority"`) {
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
	if len(r.Bugs) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no bugs found"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(r.Bugs))
	for _, b := range r.Bugs {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = b.File
		ev.RefLine = sentinelIfZero(b.Line)
		ev.ErrorCode = b.Type
		ev.Message = b.Message
		ev.Category = b.Category
		status, sev := severityFromPriority(b.Priority)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromPriority(priority int) (events.EventStatus, string) {
	switch priority {
	case 1:
		return events.StatusError, events.SeverityCritical.String()
	case 2:
		return events.StatusError, events.SeverityError.String()
	default:
		return events.StatusWarning, events.SeverityWarning.String()
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
