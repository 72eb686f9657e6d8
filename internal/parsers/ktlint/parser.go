// Package ktlint implements the JSON-root parser for `ktlint
// --reporter=json` output (spec §4.4): an array of per-file objects,
// each holding an "errors" array. ktlint's JSON carries no severity
// field, so severity is inferred from the rule name the way the
// original duck_hunt extension does.
package ktlint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "ktlint"
	priority   = parser.PriorityVeryHigh
)

type ktError struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type fileResult struct {
	File   string    `json:"file"`
	Errors []ktError `json:"errors"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("ktlint%--reporter=json%"), parser.Like("ktlint%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"errors"`) || !strings.Contains(content, `"rule"`) {
		return false
	}
	var results []fileResult
	return json.Unmarshal([]byte(trimmed), &results) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var results []fileResult
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}

	var out []events.ValidationEvent
	for _, res := range results {
		if len(res.Errors) == 0 {
			ev := events.MakeEvent(formatName, events.EventTypeSummary)
			ev.RefFile = res.File
			ev.Message = "no lint issues"
			events.ApplyStatusSeverity(&ev, events.StatusPass, "")
			out = append(out, ev)
			continue
		}
		for _, e := range res.Errors {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = res.File
			ev.RefLine = sentinelIfZero(e.Line)
			ev.RefColumn = sentinelIfZero(e.Column)
			ev.ErrorCode = e.Rule
			ev.Message = e.Message
			ev.Suggestion = e.Detail
			ev.Category = "kotlin_style"
			status, sev := severityFromRule(e.Rule)
			ev.StructuredData = `{"tool":"ktlint","rule":"` + e.Rule + `","severity":"` + sev + `"}`
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

// severityFromRule mirrors the original extension's substring-on-rule-name
// heuristic: ktlint's JSON carries no severity field of its own.
func severityFromRule(rule string) (events.EventStatus, string) {
	switch {
	case strings.Contains(rule, "indent"), strings.Contains(rule, "final-newline"):
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
