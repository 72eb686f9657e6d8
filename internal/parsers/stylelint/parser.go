// Package stylelint implements the JSON-root parser for `stylelint
// --formatter json` output (spec §4.4): an array of per-source objects
// each holding a "warnings" array with error/warning severities.
package stylelint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "stylelint"
	priority   = parser.PriorityVeryHigh
)

type warning struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	EndLine  int    `json:"endLine"`
	EndCol   int    `json:"endColumn"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

type sourceResult struct {
	Source   string    `json:"source"`
	Warnings []warning `json:"warnings"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("stylelint%--formatter json%"), parser.Like("stylelint%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"warnings"`) || !strings.Contains(content, `"source"`) {
		return false
	}
	var results []sourceResult
	return json.Unmarshal([]byte(trimmed), &results) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var results []sourceResult
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}

	var out []events.ValidationEvent
	for _, res := range results {
		if len(res.Warnings) == 0 {
			ev := events.MakeEvent(formatName, events.EventTypeSummary)
			ev.RefFile = res.Source
			ev.Message = "no lint issues"
			events.ApplyStatusSeverity(&ev, events.StatusPass, "")
			out = append(out, ev)
			continue
		}
		for _, w := range res.Warnings {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = res.Source
			ev.RefLine = sentinelIfZero(w.Line)
			ev.RefColumn = sentinelIfZero(w.Column)
			ev.ErrorCode = w.Rule
			ev.Message = w.Text
			ev.Category = "css_style"
			if w.EndLine > 0 || w.EndCol > 0 {
				ev.Suggestion = fmt.Sprintf("Range: %d:%d", w.EndLine, w.EndCol)
			}
			status, sev := severityFromStylelint(w.Severity)
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

func severityFromStylelint(sev string) (events.EventStatus, string) {
	if strings.EqualFold(sev, "error") {
		return events.StatusError, events.SeverityError.String()
	}
	return events.StatusWarning, events.SeverityWarning.String()
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
