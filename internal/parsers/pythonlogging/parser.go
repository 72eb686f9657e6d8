// Package pythonlogging implements the regex-over-lines parser for
// Python's stdlib logging default formatter output (spec §4.4):
// "LEVELNAME:logger.name:message" or the more common
// "YYYY-MM-DD HH:MM:SS,mmm LEVELNAME - logger.name - message" layout.
// The level, logger name and message are separated by ':' or '-'.
package pythonlogging

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "python-logging"
	priority   = parser.PriorityMedium
)

var lineRE = regexp.MustCompile(
	`^(?:(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}[,.]?\d*)\s+)?` +
		`(DEBUG|INFO|WARNING|ERROR|CRITICAL)\s*[:\-]\s*([\w.]+)\s*[:\-]\s*(.*)$`,
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "application_log" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, func(l string) bool {
		return lineRE.MatchString(parser.StripANSI(l))
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	for _, nl := range lines {
		clean := parser.StripANSI(nl.Text)
		if strings.TrimSpace(clean) == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
		ev.StartedAt = m[1]
		ev.FunctionName = m[3]
		ev.Message = m[4]
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		status, sev := parser.MapLevelToSeverity(m[2])
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

var _ parser.ToolParser = (*Parser)(nil)
