// Package shellcheck implements the JSON-root parser for `shellcheck -f
// json` output (spec §4.4).
package shellcheck

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "shellcheck"
	priority   = parser.PriorityVeryHigh
)

type comment struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	EndLine  int    `json:"endLine"`
	Column   int    `json:"column"`
	Level    string `json:"level"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("shellcheck%-f json%"), parser.Like("shellcheck%--format json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"code"`) || !strings.Contains(content, `"level"`) || !strings.Contains(content, `"file"`) {
		return false
	}
	var c []comment
	return json.Unmarshal([]byte(trimmed), &c) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var comments []comment
	if err := json.Unmarshal([]byte(trimmed), &comments); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(comments) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(comments))
	for _, c := range comments {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = c.File
		ev.RefLine = sentinelIfZero(c.Line)
		ev.RefColumn = sentinelIfZero(c.Column)
		ev.ErrorCode = fmt.Sprintf("SC%d", c.Code)
		ev.Message = c.Message
		ev.Category = "shell_script"
		status, sev := parser.MapLevelToSeverity(c.Level)
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
