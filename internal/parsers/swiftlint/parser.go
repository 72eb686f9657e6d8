// Package swiftlint implements the JSON-root parser for `swiftlint lint
// --reporter json` output (spec §4.4): a flat array of violations keyed
// by file/line/character/severity/rule_id/reason.
//
// Like rubocop, swiftlint has no original_source/src/parsers precedent
// (the _INDEX.md has no "swift" entry), so this follows the same
// eslint-style JSON-root template, adapted to swiftlint's real
// `--reporter json` schema.
package swiftlint

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "swiftlint"
	priority   = parser.PriorityVeryHigh
)

type violation struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Character int    `json:"character"`
	Severity  string `json:"severity"`
	RuleID    string `json:"rule_id"`
	Reason    string `json:"reason"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("swiftlint%--reporter json%"), parser.Like("swiftlint%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"rule_id"`) || !strings.Contains(content, `"character"`) {
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
		ev.RefFile = v.File
		ev.RefLine = sentinelIfZero(v.Line)
		ev.RefColumn = sentinelIfZero(v.Character)
		ev.ErrorCode = v.RuleID
		ev.Message = v.Reason
		ev.Category = "swift_style"
		status, sev := severityFromSwiftlint(v.Severity)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromSwiftlint(sev string) (events.EventStatus, string) {
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
