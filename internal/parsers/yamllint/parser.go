// Package yamllint implements the JSON-root parser for `yamllint -f
// json` output (spec §4.4): a flat array of problem objects keyed by
// file/line/column/rule/level/message.
package yamllint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "yamllint"
	priority   = parser.PriorityVeryHigh
)

type problem struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("yamllint%-f json%"), parser.Like("yamllint%--format json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"rule"`) || !strings.Contains(content, `"level"`) {
		return false
	}
	var problems []problem
	return json.Unmarshal([]byte(trimmed), &problems) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var problems []problem
	if err := json.Unmarshal([]byte(trimmed), &problems); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(problems) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(problems))
	for _, pr := range problems {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = pr.File
		ev.RefLine = sentinelIfZero(pr.Line)
		ev.RefColumn = sentinelIfZero(pr.Column)
		ev.ErrorCode = pr.Rule
		ev.Message = pr.Message
		ev.Category = "yaml_style"
		if pr.Type != "" {
			ev.Suggestion = "Issue type: " + pr.Type
		}
		status, sev := severityFromLevel(pr.Level)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromLevel(level string) (events.EventStatus, string) {
	if strings.EqualFold(level, "error") {
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
