// Package ruff implements the JSON-root parser for `ruff check
// --output-format=json` (spec §4.4). Structurally identical to the eslint
// leaf (single JSON array, one event per issue); grounded on the same
// handleui-detent tools/* Parser shape.
package ruff

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "ruff"
	priority   = parser.PriorityVeryHigh
)

type location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type violation struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Filename string   `json:"filename"`
	Location location `json:"location"`
	Fix      any      `json:"fix"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{
		parser.Like("ruff check%--output-format=json%"),
		parser.Like("ruff check%--output-format json%"),
	}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"code"`) || !strings.Contains(content, `"filename"`) || !strings.Contains(content, `"location"`) {
		return false
	}
	var v []violation
	return json.Unmarshal([]byte(trimmed), &v) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var violations []violation
	if err := json.Unmarshal([]byte(trimmed), &violations); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = "ruff: malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}

	if len(violations) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}

	out := make([]events.ValidationEvent, 0, len(violations))
	for _, v := range violations {
		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.RefFile = v.Filename
		ev.RefLine = sentinelIfZero(v.Location.Row)
		ev.RefColumn = sentinelIfZero(v.Location.Column)
		ev.ErrorCode = v.Code
		ev.Message = v.Message
		ev.Category = "style"
		if v.Fix != nil {
			ev.Suggestion = "autofixable"
		}
		events.ApplyStatusSeverity(&ev, events.StatusError, events.SeverityError.String())
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
