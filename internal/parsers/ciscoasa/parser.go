// Package ciscoasa implements the regex-over-lines parser for Cisco ASA
// syslog messages (spec §4.4):
// "%ASA-level-id: message" with level 0 (emergency) through 7 (debug).
package ciscoasa

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "cisco-asa"
	priority   = parser.PriorityMedium
)

var (
	msgRE  = regexp.MustCompile(`%ASA-(\d)-(\d+):\s*(.*)$`)
	addrRE = regexp.MustCompile(`(\d+\.\d+\.\d+\.\d+)(?:/\d+)?`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "infrastructure_security" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, msgRE.MatchString)
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	for _, nl := range lines {
		clean := strings.TrimSpace(nl.Text)
		m := msgRE.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.ErrorCode = "ASA-" + m[1] + "-" + m[2]
		ev.Message = m[3]
		ev.StartedAt = parser.ExtractTimestamp(clean)
		if addrs := addrRE.FindAllStringSubmatch(m[3], 2); len(addrs) > 0 {
			ev.Origin = addrs[0][1]
			if len(addrs) > 1 {
				ev.Target = addrs[1][1]
			}
		}
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text

		status, sev := severityFromLevel(m[1])
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no ASA syslog messages recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// Cisco syslog severity: 0-2 emergency/alert/critical, 3 error, 4 warning,
// 5-7 notice/info/debug.
func severityFromLevel(level string) (events.EventStatus, string) {
	n, err := strconv.Atoi(level)
	if err != nil {
		return events.StatusInfo, events.SeverityInfo.String()
	}
	switch {
	case n <= 2:
		return events.StatusError, events.SeverityCritical.String()
	case n == 3:
		return events.StatusError, events.SeverityError.String()
	case n == 4:
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
