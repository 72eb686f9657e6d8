// Package tflint implements the JSON-root parser for `tflint
// --format=json` output (spec §4.4).
package tflint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "tflint"
	priority   = parser.PriorityVeryHigh
)

type rulePos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type rng struct {
	Filename string  `json:"filename"`
	Start    rulePos `json:"start"`
}

type rule struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

type tfIssue struct {
	Rule    rule   `json:"rule"`
	Message string `json:"message"`
	Range   rng    `json:"range"`
}

type report struct {
	Issues []tfIssue `json:"issues"`
	Errors []tfIssue `json:"errors"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("tflint%--format=json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"issues"`) || !strings.Contains(content, `"rule"`) {
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
	all := append(append([]tfIssue{}, r.Issues...), r.Errors...)
	if len(all) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(all))
	for _, i := range all {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = i.Range.Filename
		ev.RefLine = sentinelIfZero(i.Range.Start.Line)
		ev.RefColumn = sentinelIfZero(i.Range.Start.Column)
		ev.ErrorCode = i.Rule.Name
		ev.Message = i.Message
		ev.Category = "infrastructure"
		status, sev := parser.MapLevelToSeverity(i.Rule.Severity)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

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
