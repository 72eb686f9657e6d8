// Package eslint implements the JSON-root parser for `eslint --format json`
// output (spec §4.4, scenario S1). Structurally grounded on
// handleui-detent/packages/core/tools/eslint's Parser shape (small struct,
// NewParser constructor, FormatName/Name/Category/Priority), adapted from
// a line-oriented multi-format text parser to a single JSON document
// parser since this spec's ESLint input is the tool's JSON reporter, not
// its stylish console output.
package eslint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "eslint"
	priority   = parser.PriorityVeryHigh
)

// message mirrors one entry of an ESLint JSON result's "messages" array.
type message struct {
	RuleID    string `json:"ruleId"`
	Severity  int    `json:"severity"` // 1=warning, 2=error
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	NodeType  string `json:"nodeType"`
	MessageID string `json:"messageId"`
}

// result mirrors one entry of ESLint's top-level JSON array.
type result struct {
	FilePath      string    `json:"filePath"`
	Messages      []message `json:"messages"`
	ErrorCount    int       `json:"errorCount"`
	WarningCount  int       `json:"warningCount"`
}

// Parser implements parser.ToolParser for ESLint's JSON reporter format.
type Parser struct{}

// NewParser creates a new ESLint parser.
func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{
		parser.Like("eslint%--format=json%"),
		parser.Like("eslint%--format json%"),
		parser.Like("%eslint%.json%"),
	}
}

// CanParse checks for ESLint's discriminator keys before committing to a
// parse attempt (spec §4.4: "requires filePath and messages present").
func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"filePath"`) || !strings.Contains(content, `"messages"`) {
		return false
	}
	var results []result
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		return false
	}
	return true
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	var results []result
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = "eslint: malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}

	var out []events.ValidationEvent
	for _, res := range results {
		if len(res.Messages) == 0 {
			ev := events.MakeEvent(formatName, events.EventTypeSummary)
			ev.RefFile = res.FilePath
			ev.Category = "lint_summary"
			ev.Message = "no lint issues"
			events.ApplyStatusSeverity(&ev, events.StatusPass, "")
			out = append(out, ev)
			continue
		}
		for _, m := range res.Messages {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = res.FilePath
			ev.RefLine = nonZeroOrSentinel(m.Line)
			ev.RefColumn = nonZeroOrSentinel(m.Column)
			ev.ErrorCode = ruleID(m)
			ev.Message = m.Message
			ev.Category = "style"
			status, sev := severityFromESLint(m.Severity)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}

func (p *Parser) RequiresContext() bool { return false }

func ruleID(m message) string {
	if m.RuleID != "" {
		return m.RuleID
	}
	return m.MessageID
}

func severityFromESLint(sev int) (events.EventStatus, string) {
	if sev >= 2 {
		return events.StatusError, events.SeverityError.String()
	}
	return events.StatusWarning, events.SeverityWarning.String()
}

func nonZeroOrSentinel(n int) int {
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
