// Package cloudtrail implements the JSONL parser for AWS CloudTrail
// records exported one-per-line (spec §4.4, §9 "JSON access" design
// note). Cloud audit records are schema-loose and deeply nested, so this
// parser reaches for gjson instead of a fully typed struct: most fields
// are optional and vary by event source, and path-based extraction keeps
// the parser from needing a new field for every AWS service's request
// parameters shape.
package cloudtrail

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "cloudtrail"
	priority   = parser.PriorityHigh
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "cloud_audit" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern { return nil }

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikeCloudTrailLine)
}

func looksLikeCloudTrailLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	r := gjson.Parse(trimmed)
	return r.Get("eventSource").Exists() && r.Get("eventName").Exists() && r.Get("eventTime").Exists()
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []events.ValidationEvent
	nonBlank, malformed := 0, 0

	for _, nl := range lines {
		trimmed := strings.TrimSpace(nl.Text)
		if trimmed == "" {
			continue
		}
		nonBlank++
		if !gjson.Valid(trimmed) {
			malformed++
			continue
		}
		r := gjson.Parse(trimmed)
		if !r.Get("eventName").Exists() {
			malformed++
			continue
		}

		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.Category = r.Get("eventSource").String()
		ev.Message = r.Get("eventName").String()
		ev.Principal = r.Get("userIdentity.arn").String()
		ev.Origin = r.Get("sourceIPAddress").String()
		ev.Target = firstNonEmpty(
			r.Get("requestParameters.bucketName").String(),
			r.Get("requestParameters.roleName").String(),
			r.Get("resources.0.ARN").String(),
		)
		ev.ActorType = r.Get("userIdentity.type").String()
		ev.StartedAt = r.Get("eventTime").String()
		ev.ExternalID = r.Get("eventID").String()
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed

		status, sev := severityFromRecord(r)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}

	if len(out) == 0 && malformed == nonBlank && malformed > 0 {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable CloudTrail records"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no cloudtrail records"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromRecord(r gjson.Result) (events.EventStatus, string) {
	if r.Get("errorCode").Exists() {
		code := r.Get("errorCode").String()
		if strings.Contains(code, "AccessDenied") || strings.Contains(code, "UnauthorizedAccess") {
			return events.StatusError, events.SeverityCritical.String()
		}
		return events.StatusError, events.SeverityError.String()
	}
	if r.Get("readOnly").Exists() && !r.Get("readOnly").Bool() {
		return events.StatusInfo, events.SeverityInfo.String()
	}
	return events.StatusInfo, events.SeverityInfo.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ parser.ToolParser = (*Parser)(nil)
