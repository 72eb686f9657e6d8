// Package bunyan implements the JSONL parser for Node's bunyan default
// log format (spec §4.4): one JSON object per line with a numeric
// "level" on bunyan's 10-60 scale, a format version "v", "name",
// "hostname", "msg" and "time".
package bunyan

import (
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
	"github.com/tidwall/gjson"
)

const (
	formatName = "bunyan"
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
	return parser.MatchRatio(content, 10, looksLikeBunyanLine)
}

func looksLikeBunyanLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	r := gjson.Parse(trimmed)
	if r.Get("v").Exists() {
		return true
	}
	return r.Get("name").Exists() && r.Get("level").Type == gjson.Number
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
		if !gjson.Valid(trimmed) || !looksLikeBunyanLine(trimmed) {
			malformed++
			continue
		}
		r := gjson.Parse(trimmed)

		ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
		ev.Message = r.Get("msg").String()
		ev.Category = r.Get("name").String()
		ev.Origin = r.Get("hostname").String()
		ev.StartedAt = r.Get("time").String()
		if code := r.Get("err.message"); code.Exists() {
			ev.ErrorCode = code.String()
		}
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed

		status, sev := severityFromLevel(r.Get("level").Int())
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

// Bunyan's numeric levels share Pino's 10-60 scale.
func severityFromLevel(level int64) (events.EventStatus, string) {
	switch {
	case level >= 50:
		return events.StatusError, events.SeverityError.String()
	case level >= 40:
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
