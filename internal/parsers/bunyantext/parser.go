// Package bunyantext implements the regex-over-lines parser for the
// `bunyan` CLI's pretty-printed rendering of its own JSON log stream
// (spec §4.4): "[2025-01-15T10:30:45.123Z]  INFO: name/1234 on host:
// message". original_source/src/parsers/app_logging/bunyan_parser.cpp
// only covers the raw JSONL form (see internal/parsers/bunyan), so this
// text variant is grounded on the same npm-level vocabulary and general
// timestamp-bracket shape the pythonlogging/serilog text parsers use.
package bunyantext

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "bunyan-text"
	priority   = parser.PriorityMedium
)

var lineRE = regexp.MustCompile(
	`^\[([\d\-T:.Z]+)\]\s+(TRACE|DEBUG|INFO|WARN|ERROR|FATAL):\s+(\S+)/(\d+)\s+on\s+(\S+):\s*(.*)$`,
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "application_log" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, lineRE.MatchString)
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	for _, nl := range lines {
		clean := strings.TrimRight(nl.Text, " \t\r\n")
		if clean == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
		ev.StartedAt = m[1]
		ev.Category = m[3]
		ev.Origin = m[5]
		ev.Message = m[6]
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = clean

		status, sev := severityFromLevel(m[2])
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no recognizable log lines"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromLevel(level string) (events.EventStatus, string) {
	switch level {
	case "FATAL", "ERROR":
		return events.StatusError, events.SeverityError.String()
	case "WARN":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
