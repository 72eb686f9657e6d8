// Package serilog implements the JSONL parser for Serilog's compact
// JSON formatter output (spec §4.4): one JSON object per line using the
// "@t"/"@mt"/"@l"/"@x" compact-log-event-format field names, plus an
// optional "SourceContext" used as category.
package serilog

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "serilog"
	priority   = parser.PriorityHigh
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "application_log" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikeSerilogLine)
}

func looksLikeSerilogLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	r := gjson.Parse(trimmed)
	return r.Get("@t").Exists() || r.Get("@mt").Exists()
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
		if !gjson.Valid(trimmed) || !looksLikeSerilogLine(trimmed) {
			malformed++
			continue
		}
		r := gjson.Parse(trimmed)

		ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
		ev.StartedAt = r.Get("@t").String()
		ev.Message = r.Get("@mt").String()
		ev.Category = r.Get("SourceContext").String()
		if ex := r.Get("@x"); ex.Exists() {
			ev.ErrorCode = ex.String()
		}
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed

		status, sev := severityFromLevel(r.Get("@l").String())
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}

	if len(out) == 0 && malformed == nonBlank && malformed > 0 {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable log lines"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no log lines"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// Serilog's "@l" level, defaulting to "Information" when absent.
func severityFromLevel(level string) (events.EventStatus, string) {
	switch strings.ToLower(level) {
	case "fatal", "error", "ftl", "err":
		return events.StatusError, events.SeverityError.String()
	case "warning", "wrn":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
