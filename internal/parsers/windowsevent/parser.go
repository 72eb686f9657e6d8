// Package windowsevent implements the regex-over-lines parser for
// Windows Event Log entries exported as flat text (spec §4.4), one
// "Key: Value" record block per event separated by blank lines:
// Log Name, Source, Date, Event ID, Level, Description.
package windowsevent

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "windows-event"
	priority   = parser.PriorityMedium
)

var fieldRE = regexp.MustCompile(`^(Log Name|Source|Date|Event ID|Level|Description|Task Category):\s*(.*)$`)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "infrastructure_security" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return fieldRE.MatchString(strings.TrimSpace(l))
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []events.ValidationEvent
	fields := map[string]string{}
	startLine := -1
	flush := func(endLine int) {
		if len(fields) == 0 {
			return
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Category = fields["Source"]
		ev.ErrorCode = fields["Event ID"]
		ev.StartedAt = fields["Date"]
		ev.Message = fields["Description"]
		ev.FunctionName = fields["Task Category"]
		ev.LogLineStart = startLine
		ev.LogLineEnd = endLine
		status, sev := parser.MapLevelToSeverity(fields["Level"])
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
		fields = map[string]string{}
		startLine = -1
	}

	for _, nl := range lines {
		clean := strings.TrimSpace(nl.Text)
		if clean == "" {
			flush(nl.Number - 1)
			continue
		}
		if m := fieldRE.FindStringSubmatch(clean); m != nil {
			if startLine == -1 {
				startLine = nl.Number
			}
			fields[m[1]] = m[2]
		}
	}
	flush(lines[len(lines)-1].Number)

	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no event records recognized"
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
