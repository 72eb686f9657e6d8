// Package rails implements the regex-over-lines parser for Rails'
// request logger output (spec §4.4): a "Started ..." line, an optional
// "Processing by Controller#action as FORMAT" line, and a "Completed
// NNN ... in Xms" line, correlated into one event per request the way
// the original duck_hunt extension's rails_log_parser.cpp does.
package rails

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "rails"
	priority   = parser.PriorityMedium
)

var (
	startedRE    = regexp.MustCompile(`^Started\s+(\w+)\s+"([^"]+)"\s+for\s+(\S+)\s+at\s+(.+)$`)
	processingRE = regexp.MustCompile(`^Processing\s+by\s+(\w+)#(\w+)\s+as\s+(\w+)`)
	completedRE  = regexp.MustCompile(`^Completed\s+(\d+)\s+.+?\s+in\s+(\d+(?:\.\d+)?ms)(?:\s+\(Views:\s+(\d+(?:\.\d+)?ms))?(?:\s*\|\s*ActiveRecord:\s+(\d+(?:\.\d+)?ms)\))?`)
)

type request struct {
	method, path, remoteIP, timestamp     string
	controller, action, format            string
	statusCode                            int
	duration, viewsTime, arTime           string
	startLine, endLine                    int
	hasStarted                            bool
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "application_log" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return startedRE.MatchString(l) || processingRE.MatchString(l) || completedRE.MatchString(l)
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []events.ValidationEvent
	var cur request

	flush := func() {
		if !cur.hasStarted {
			cur = request{}
			return
		}
		out = append(out, buildEvent(cur))
		cur = request{}
	}

	for _, nl := range lines {
		clean := strings.TrimRight(nl.Text, " \t\r\n")
		if clean == "" {
			continue
		}
		if m := startedRE.FindStringSubmatch(clean); m != nil {
			flush()
			cur.method, cur.path, cur.remoteIP, cur.timestamp = m[1], m[2], m[3], m[4]
			cur.startLine = nl.Number
			cur.hasStarted = true
			continue
		}
		if m := processingRE.FindStringSubmatch(clean); m != nil {
			cur.controller, cur.action, cur.format = m[1], m[2], m[3]
			continue
		}
		if m := completedRE.FindStringSubmatch(clean); m != nil {
			cur.statusCode, _ = strconv.Atoi(m[1])
			cur.duration = m[2]
			cur.viewsTime = m[3]
			cur.arTime = m[4]
			cur.endLine = nl.Number
			flush()
			continue
		}
	}
	flush()

	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no recognizable requests"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func buildEvent(r request) events.ValidationEvent {
	ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
	ev.LogLineStart = r.startLine
	if r.endLine > 0 {
		ev.LogLineEnd = r.endLine
	} else {
		ev.LogLineEnd = r.startLine
	}
	ev.StartedAt = r.timestamp
	ev.Origin = r.remoteIP
	ev.RefFile = r.path
	ev.ExecutionTime = parseDurationMS(r.duration)

	if r.controller != "" {
		ev.Category = r.controller + "#" + r.action
	} else {
		ev.Category = r.method
	}

	msg := r.method + " " + r.path
	if r.statusCode > 0 {
		msg += fmt.Sprintf(" -> %d", r.statusCode)
		if r.duration != "" {
			msg += " (" + r.duration + ")"
		}
	}
	ev.Message = msg

	if r.statusCode > 0 {
		ev.ErrorCode = strconv.Itoa(r.statusCode)
		status, sev := severityFromStatusCode(r.statusCode)
		events.ApplyStatusSeverity(&ev, status, sev)
	} else {
		events.ApplyStatusSeverity(&ev, events.StatusInfo, events.SeverityInfo.String())
	}

	ev.StructuredData = structuredData(r)
	return ev
}

func structuredData(r request) string {
	var b strings.Builder
	b.WriteString(`{"method":"` + r.method + `","path":"` + r.path + `"`)
	if r.remoteIP != "" {
		b.WriteString(`,"remote_ip":"` + r.remoteIP + `"`)
	}
	if r.controller != "" {
		b.WriteString(`,"controller":"` + r.controller + `","action":"` + r.action + `"`)
	}
	if r.format != "" {
		b.WriteString(`,"format":"` + r.format + `"`)
	}
	if r.statusCode > 0 {
		b.WriteString(fmt.Sprintf(`,"status":%d`, r.statusCode))
	}
	if r.duration != "" {
		b.WriteString(`,"duration":"` + r.duration + `"`)
	}
	if r.viewsTime != "" {
		b.WriteString(`,"views_time":"` + r.viewsTime + `"`)
	}
	if r.arTime != "" {
		b.WriteString(`,"ar_time":"` + r.arTime + `"`)
	}
	b.WriteString("}")
	return b.String()
}

func parseDurationMS(d string) float64 {
	trimmed := strings.TrimSuffix(d, "ms")
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return v / 1000 // ExecutionTime is in seconds
}

func severityFromStatusCode(code int) (events.EventStatus, string) {
	switch {
	case code >= 500:
		return events.StatusError, events.SeverityError.String()
	case code >= 400:
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
