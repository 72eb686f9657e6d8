// Package clippy implements the JSONL parser for `cargo clippy
// --message-format=json` output (spec §4.4). Despite being named among
// the "JSON-root" formats in spec prose, the original duck_hunt
// extension's clippy_json_parser.cpp parses this one line at a time
// (std::getline over the stream) because cargo emits one compiler
// message object per line, not a single JSON document — this package
// follows that behavior rather than the prose grouping.
package clippy

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "clippy"
	priority   = parser.PriorityHigh
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("cargo clippy%--message-format=json%")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikeClippyLine)
}

func looksLikeClippyLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	if !strings.Contains(trimmed, `"spans"`) || !strings.Contains(trimmed, `"is_primary"`) {
		return false
	}
	r := gjson.Parse(trimmed)
	level := r.Get("message.level").String()
	return r.Get("message.spans").IsArray() && (level == "warning" || level == "error")
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []events.ValidationEvent
	nonBlank, malformed := 0, 0

	for _, nl := range lines {
		trimmed := strings.TrimSpace(nl.Text)
		if trimmed == "" {
			continue
		}
		nonBlank++
		if !gjson.Valid(trimmed) {
			malformed++
			continue
		}
		r := gjson.Parse(trimmed)
		msg := r.Get("message")
		if !msg.Exists() {
			malformed++
			continue
		}
		spans := msg.Get("spans")
		span := primarySpan(spans)
		if !span.Exists() {
			continue
		}

		ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
		ev.Category = "code_quality"
		ev.RefFile = span.Get("file_name").String()
		ev.RefLine = sentinelIfZero(int(span.Get("line_start").Int()))
		ev.RefColumn = sentinelIfZero(int(span.Get("column_start").Int()))
		ev.ErrorCode = msg.Get("code.code").String()
		ev.Message = msg.Get("message").String()
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed

		status, sev := severityFromLevel(msg.Get("level").String())
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}

	if len(out) == 0 && malformed == nonBlank && malformed > 0 {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable clippy messages"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
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

func primarySpan(spans gjson.Result) gjson.Result {
	if !spans.IsArray() {
		return gjson.Result{}
	}
	var first gjson.Result
	for i, s := range spans.Array() {
		if i == 0 {
			first = s
		}
		if s.Get("is_primary").Bool() {
			return s
		}
	}
	return first
}

func severityFromLevel(level string) (events.EventStatus, string) {
	switch level {
	case "error":
		return events.StatusError, events.SeverityError.String()
	case "warn", "warning":
		return events.StatusWarning, events.SeverityWarning.String()
	case "note", "info":
		return events.StatusInfo, events.SeverityInfo.String()
	default:
		return events.StatusWarning, events.SeverityWarning.String()
	}
}

func sentinelIfZero(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

var _ parser.ToolParser = (*Parser)(nil)
