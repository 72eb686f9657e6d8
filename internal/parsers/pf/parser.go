// Package pf implements the regex-over-lines parser for OpenBSD/macOS
// pf firewall log lines (spec §4.4), as rendered by `tcpdump -n -e -ttt
// -i pflog0`-style text: "rule 3/0(match): block in on em0: 1.2.3.4 >
// 5.6.7.8: ...". Has no original_source/src/parsers precedent (no "pf"
// entry in _INDEX.md), so this follows the same discriminator-plus-
// capture-group shape as the iptables and cisco-asa parsers already in
// this tree, adapted to pf's actual log grammar.
package pf

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "pf"
	priority   = parser.PriorityMedium
)

var (
	discriminator = regexp.MustCompile(`\brule\s+\S+\((\w+)\):\s+(block|pass)\s+(in|out)\s+on\s+(\S+):\s*(\S+)\s*>\s*(\S+):`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "infrastructure_security" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, discriminator.MatchString)
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	for _, nl := range lines {
		clean := strings.TrimSpace(nl.Text)
		m := discriminator.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Category = m[4] // interface
		ev.Origin = m[5]
		ev.Target = m[6]
		ev.StartedAt = parser.ExtractTimestamp(clean)
		ev.Message = clean
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text

		action := strings.ToLower(m[2])
		status, sev := events.StatusWarning, events.SeverityWarning.String()
		if action == "block" {
			status, sev = events.StatusError, events.SeverityError.String()
		}
		ev.ErrorCode = action
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no pf log entries recognized"
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
