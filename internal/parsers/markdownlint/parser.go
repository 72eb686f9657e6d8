// Package markdownlint implements the JSON-root parser for
// `markdownlint --json` output (spec §4.4): a flat array of violation
// objects keyed by fileName/lineNumber/ruleNames/ruleDescription. All
// findings are reported at WARNING; markdownlint has no error tier.
package markdownlint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "markdownlint"
	priority   = parser.PriorityVeryHigh
)

type violation struct {
	FileName        string `json:"fileName"`
	LineNumber      int    `json:"lineNumber"`
	ErrorRange      []int  `json:"errorRange"`
	RuleNames       []string `json:"ruleNames"`
	RuleDescription string `json:"ruleDescription"`
	ErrorDetail     string `json:"errorDetail"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("markdownlint%--json%"), parser.Like("%markdownlint%.json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"ruleNames"`) || !strings.Contains(content, `"fileName"`) {
		return false
	}
	var violations []violation
	return json.Unmarshal([]byte(trimmed), &violations) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var violations []violation
	if err := json.Unmarshal([]byte(trimmed), &violations); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
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
		ev.RefFile = v.FileName
		ev.RefLine = sentinelIfZero(v.LineNumber)
		if len(v.ErrorRange) > 0 {
			ev.RefColumn = sentinelIfZero(v.ErrorRange[0])
		} else {
			ev.RefColumn = -1
		}
		errorCode := ""
		if len(v.RuleNames) > 0 {
			errorCode = v.RuleNames[0]
		}
		ev.ErrorCode = errorCode
		ev.Message = v.RuleDescription
		ev.Suggestion = v.ErrorDetail
		ev.Category = "markdown_style"
		ev.StructuredData = `{"tool":"markdownlint","rule":"` + errorCode + `"}`
		events.ApplyStatusSeverity(&ev, events.StatusWarning, events.SeverityWarning.String())
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
