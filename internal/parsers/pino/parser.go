// Package pino implements the JSONL parser for Pino's default JSON log
// line format (spec §4.4): one JSON object per line with numeric "level"
// (10=trace..60=fatal), "time" (epoch millis), "msg", and arbitrary
// additional bindings.
package pino

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "pino"
	priority   = parser.PriorityHigh
)

type logLine struct {
	Level int64  `json:"level"`
	Time  int64  `json:"time"`
	Msg   string `json:"msg"`
	Name  string `json:"name"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "application_log" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return nil
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikePinoLine)
}

func looksLikePinoLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(trimmed, `"level"`) || !strings.Contains(trimmed, `"time"`) {
		return false
	}
	var l logLine
	return json.Unmarshal([]byte(trimmed), &l) == nil
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
		var l logLine
		if err := json.Unmarshal([]byte(trimmed), &l); err != nil {
			malformed++
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
		ev.Message = l.Msg
		ev.FunctionName = l.Name
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed
		if l.Time > 0 {
			ev.StartedAt = fmt.Sprintf("%d", l.Time)
		}
		status, sev := severityFromLevel(l.Level)
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

// Pino's numeric levels: 10 trace, 20 debug, 30 info, 40 warn, 50 error, 60 fatal.
func severityFromLevel(level int64) (events.EventStatus, string) {
	switch {
	case level >= 60:
		return events.StatusError, events.SeverityCritical.String()
	case level >= 50:
		return events.StatusError, events.SeverityError.String()
	case level >= 40:
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
