// Package gcp implements the JSONL parser for GCP Cloud Logging export
// records (spec §4.4), one JSON LogEntry per line. Like cloudtrail,
// these records are schema-loose (standard log entries carry
// "textPayload"; audit log entries carry a nested "protoPayload"), so
// this parser reaches for gjson path extraction rather than a fully
// typed struct.
package gcp

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "gcp"
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
	return parser.MatchRatio(content, 10, looksLikeGCPLine)
}

func looksLikeGCPLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	r := gjson.Parse(trimmed)
	return r.Get("logName").Exists() || r.Get("severity").Exists() || r.Get("timestamp").Exists()
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
		logName := r.Get("logName").String()
		severity := r.Get("severity").String()
		timestamp := r.Get("timestamp").String()
		if logName == "" && severity == "" && timestamp == "" {
			malformed++
			continue
		}

		resourceType := r.Get("resource.type").String()
		methodName := r.Get("protoPayload.methodName").String()
		serviceName := r.Get("protoPayload.serviceName").String()

		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.StartedAt = timestamp
		ev.FunctionName = methodName
		switch {
		case serviceName != "":
			ev.Category = serviceName
		case resourceType != "":
			ev.Category = resourceType
		default:
			ev.Category = "gcp"
		}
		switch {
		case methodName != "":
			ev.Message = methodName
		case r.Get("textPayload").Exists():
			ev.Message = r.Get("textPayload").String()
		default:
			ev.Message = logName
		}
		ev.Principal = r.Get("authenticationInfo.principalEmail").String()
		ev.ErrorCode = r.Get("status.code").String()
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed

		status, sev := severityFromGCP(severity)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}

	if len(out) == 0 && malformed == nonBlank && malformed > 0 {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable GCP log entries"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no gcp log entries"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// GCP severities: DEFAULT, DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL, ALERT, EMERGENCY.
func severityFromGCP(severity string) (events.EventStatus, string) {
	switch strings.ToUpper(severity) {
	case "ERROR", "CRITICAL", "ALERT", "EMERGENCY":
		return events.StatusError, events.SeverityError.String()
	case "WARNING", "NOTICE":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
