// Package hadolint implements the JSON-root parser for `hadolint -f json`
// Dockerfile lint output (spec §4.4).
package hadolint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "hadolint"
	priority   = parser.PriorityVeryHigh
)

type issue struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file"`
	Level   string `json:"level"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("hadolint%-f json%"), parser.Like("hadolint%--format json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"code"`) || !strings.Contains(content, `"file"`) || !strings.Contains(content, `"level"`) {
		return false
	}
	var v []issue
	return json.Unmarshal([]byte(trimmed), &v) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var issues []issue
	if err := json.Unmarshal([]byte(trimmed), &issues); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(issues) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(issues))
	for _, i := range issues {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = i.File
		ev.RefLine = sentinelIfZero(i.Line)
		ev.RefColumn = sentinelIfZero(i.Column)
		ev.ErrorCode = i.Code
		ev.Message = i.Message
		ev.Category = "docker_build"
		status, sev := parser.MapLevelToSeverity(i.Level)
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
