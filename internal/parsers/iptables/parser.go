// Package iptables implements the regex-over-lines parser for Linux
// netfilter/iptables LOG target kernel log lines (spec §4.4):
// "... IN=eth0 OUT= ... SRC=1.2.3.4 DST=5.6.7.8 ... PROTO=TCP ... DPT=22 ...".
package iptables

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "iptables"
	priority   = parser.PriorityMedium
)

var (
	discriminator = regexp.MustCompile(`\bIN=\S*\s.*\bSRC=\d+\.\d+\.\d+\.\d+\b.*\bDST=\d+\.\d+\.\d+\.\d+\b`)
	srcRE         = regexp.MustCompile(`\bSRC=(\S+)`)
	dstRE         = regexp.MustCompile(`\bDST=(\S+)`)
	protoRE       = regexp.MustCompile(`\bPROTO=(\S+)`)
	dptRE         = regexp.MustCompile(`\bDPT=(\S+)`)
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
		if clean == "" || !discriminator.MatchString(clean) {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Origin = firstGroup(srcRE, clean)
		ev.Target = firstGroup(dstRE, clean)
		ev.Category = firstGroup(protoRE, clean)
		ev.ErrorCode = firstGroup(dptRE, clean)
		ev.StartedAt = parser.ExtractTimestamp(clean)
		ev.Message = clean
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		status, sev := events.StatusWarning, events.SeverityWarning.String()
		if strings.Contains(clean, "DROP") || strings.Contains(clean, "REJECT") {
			status, sev = events.StatusError, events.SeverityError.String()
		}
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no netfilter log entries recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

var _ parser.ToolParser = (*Parser)(nil)
