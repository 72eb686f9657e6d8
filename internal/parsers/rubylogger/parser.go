// Package rubylogger implements the regex-over-lines parser for Ruby's
// stdlib Logger default format (spec §4.4):
// "L, [2025-01-15T10:30:45.123456 #1234]  LEVEL -- progname: message".
package rubylogger

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "ruby-logger"
	priority   = parser.PriorityMedium
)

var lineRE = regexp.MustCompile(
	`^([FEWIDA]),\s+\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d+)\s+#(\d+)\]\s+(\w+)\s+--\s+(\S+):\s*(.*)$`,
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
		ev.StartedAt = m[2]
		ev.Category = m[5]
		ev.Message = m[6]
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = clean
		ev.StructuredData = `{"level":"` + m[4] + `","pid":"` + m[3] + `","progname":"` + m[5] + `"}`

		status, sev := severityFromLevelChar(m[1])
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

// Ruby Logger's single-letter level: F(atal)/E(rror)->error,
// W(arn)->warning, I(nfo)/D(ebug)/A(ny)->info.
func severityFromLevelChar(c string) (events.EventStatus, string) {
	switch c {
	case "F", "E":
		return events.StatusError, events.SeverityError.String()
	case "W":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
