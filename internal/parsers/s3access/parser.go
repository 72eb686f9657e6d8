// Package s3access implements the regex-over-lines parser for AWS S3
// server access log entries (spec §4.4), a fixed space-delimited format
// with quoted fields:
// `bucket requester remoteip requester-or-"-" time "request" status ...`.
package s3access

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "s3-access"
	priority   = parser.PriorityMedium
)

// Captures: bucket, requester, remote ip, [time], "request", status
var lineRE = regexp.MustCompile(
	`^(\S+) (\S+) (\S+) \S+ \[([^\]]+)\] "([A-Z]+ [^"]*)" (\d{3}) \S+ (\S+)`,
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
		ev.Target = m[1] // bucket
		ev.Principal = m[2] // requester
		ev.Origin = m[3]    // remote IP
		ev.StartedAt = m[4]
		ev.Message = m[5]
		ev.ErrorCode = m[6]
		ev.ActorType = m[7]
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text

		status, sev := severityFromStatus(m[6])
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no s3 access log entries recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromStatus(status string) (events.EventStatus, string) {
	code, err := strconv.Atoi(status)
	if err != nil {
		return events.StatusInfo, events.SeverityInfo.String()
	}
	switch {
	case code >= 500:
		return events.StatusError, events.SeverityCritical.String()
	case code == 403 || code == 401:
		return events.StatusError, events.SeverityError.String()
	case code >= 400:
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
