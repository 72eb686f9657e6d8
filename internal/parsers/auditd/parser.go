// Package auditd implements the regex-over-lines parser for Linux
// auditd's key=value log line format (spec §4.4):
// `type=SYSCALL msg=audit(1700000000.123:456): arch=... syscall=... success=no exe="/bin/su" ...`.
package auditd

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "auditd"
	priority   = parser.PriorityMedium
)

var (
	headerRE  = regexp.MustCompile(`^type=(\S+)\s+msg=audit\((\d+)\.\d+:(\d+)\):`)
	successRE = regexp.MustCompile(`\bsuccess=(\S+)`)
	exeRE     = regexp.MustCompile(`\bexe="([^"]+)"`)
	uidRE     = regexp.MustCompile(`\bauid=(\S+)`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "infrastructure_security" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, headerRE.MatchString)
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	for _, nl := range lines {
		clean := strings.TrimSpace(nl.Text)
		m := headerRE.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Category = m[1]
		ev.ExternalID = m[3]
		ev.StartedAt = m[2]
		ev.Target = firstGroup(exeRE, clean)
		ev.Principal = firstGroup(uidRE, clean)
		ev.Message = clean
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text

		status, sev := events.StatusInfo, events.SeverityInfo.String()
		if success := firstGroup(successRE, clean); success == "no" {
			status, sev = events.StatusError, events.SeverityError.String()
		}
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no audit records recognized"
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
