// Package sqlfluff implements the JSON-root parser for `sqlfluff lint
// --format json` output (spec §4.4): an array of per-file objects, each
// holding a "violations" array. sqlfluff reports every violation at
// WARNING; there is no separate error tier in its JSON shape.
package sqlfluff

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "sqlfluff"
	priority   = parser.PriorityVeryHigh
)

type violation struct {
	LineNo      int    `json:"line_no"`
	LinePos     int    `json:"line_pos"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type fileResult struct {
	Filepath   string      `json:"filepath"`
	Violations []violation `json:"violations"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("sqlfluff%lint%--format json%"), parser.Like("sqlfluff%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"violations"`) || !strings.Contains(content, `"filepath"`) {
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
		if len(res.Violations) == 0 {
			ev := events.MakeEvent(formatName, events.EventTypeSummary)
			ev.RefFile = res.Filepath
			ev.Message = "no lint issues"
			events.ApplyStatusSeverity(&ev, events.StatusPass, "")
			out = append(out, ev)
			continue
		}
		for _, v := range res.Violations {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = res.Filepath
			ev.RefLine = sentinelIfZero(v.LineNo)
			ev.RefColumn = sentinelIfZero(v.LinePos)
			ev.ErrorCode = v.Code
			ev.Message = v.Description
			ev.Category = "sql_style"
			if v.Code != "" {
				ev.Suggestion = "Rule: " + v.Code
			}
			ev.StructuredData = `{"tool":"sqlfluff","rule":"` + v.Code + `"}`
			events.ApplyStatusSeverity(&ev, events.StatusWarning, events.SeverityWarning.String())
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
