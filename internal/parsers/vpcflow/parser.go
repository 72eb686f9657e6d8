// Package vpcflow implements the regex-over-lines parser for AWS VPC
// Flow Logs in their default space-delimited version-2 record format
// (spec §4.4):
// "version account-id eni-id srcaddr dstaddr srcport dstport protocol
// packets bytes start end action log-status". Has no
// original_source/src/parsers precedent (no "vpc_flow"/"vpcflow" entry
// in _INDEX.md), so this follows the same field-capture shape the
// iptables/cisco-asa parsers use, adapted to VPC Flow Logs' fixed
// column order instead of key=value pairs.
package vpcflow

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "vpcflow"
	priority   = parser.PriorityMedium
)

var lineRE = regexp.MustCompile(
	`^(\d+)\s+(\d+)\s+(eni-\w+)\s+(\S+)\s+(\S+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(ACCEPT|REJECT)\s+(OK|NODATA|SKIPDATA)\s*$`,
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "infrastructure_security" }
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
		clean := strings.TrimSpace(nl.Text)
		m := lineRE.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Origin = m[4]
		ev.Target = m[5]
		ev.Category = protocolName(m[8])
		ev.ErrorCode = m[6] + "->" + m[7] // srcport->dstport
		ev.Message = clean
		ev.ExternalID = m[3] // eni-id
		if start, err := strconv.ParseInt(m[10], 10, 64); err == nil {
			ev.StartedAt = strconv.FormatInt(start, 10)
		}
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text

		action := m[13]
		ev.StructuredData = `{"action":"` + action + `","log_status":"` + m[14] + `"}`

		status, sev := events.StatusInfo, events.SeverityInfo.String()
		if action == "REJECT" {
			status, sev = events.StatusWarning, events.SeverityWarning.String()
		}
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no VPC flow log records recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func protocolName(n string) string {
	switch n {
	case "6":
		return "TCP"
	case "17":
		return "UDP"
	case "1":
		return "ICMP"
	default:
		return n
	}
}

var _ parser.ToolParser = (*Parser)(nil)
