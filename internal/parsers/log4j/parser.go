// Package log4j implements the regex-over-lines parser for Log4j's
// default PatternLayout output (spec §4.4):
// "YYYY-MM-DD HH:MM:SS,mmm [thread] LEVEL logger.Class - message".
package log4j

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "log4j"
	priority   = parser.PriorityHigh
)

var lineRE = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}[,.]\d+)\s+` +
		`\[([^\]]+)\]\s+` +
		`(TRACE|DEBUG|INFO|WARN|ERROR|FATAL)\s+` +
		`([\w.$]+)\s*-\s*(.*)$`,
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
		ev.FunctionName = m[4]
		ev.Message = m[5]
		ev.Category = "thread:" + m[2]
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		status, sev := parser.MapLevelToSeverity(m[3])
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
