// Package azure implements the JSONL parser for Azure Activity Log
// export records (spec §4.4), one JSON record per line keyed by
// operationName/resourceId/level/status, exercised via gjson for the
// same schema-looseness reason as cloudtrail and gcp.
package azure

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "azure"
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
	return parser.MatchRatio(content, 10, looksLikeAzureLine)
}

func looksLikeAzureLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") || !gjson.Valid(trimmed) {
		return false
	}
	r := gjson.Parse(trimmed)
	return r.Get("operationName").Exists() || r.Get("resourceId").Exists()
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
		operationName := r.Get("operationName").String()
		resourceID := r.Get("resourceId").String()
		if operationName == "" && resourceID == "" {
			malformed++
			continue
		}

		timestamp := r.Get("time").String()
		if timestamp == "" {
			timestamp = r.Get("eventTimestamp").String()
		}
		status := r.Get("status").String()
		if status == "" {
			status = r.Get("status.value").String()
		}
		category := r.Get("category").String()
		resourceProvider := r.Get("resourceProviderName").String()
		if resourceProvider == "" {
			resourceProvider = r.Get("resourceProviderName.value").String()
		}
		resultType := r.Get("resultType").String()

		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.StartedAt = timestamp
		ev.FunctionName = operationName
		switch {
		case category != "":
			ev.Category = category
		case resourceProvider != "":
			ev.Category = resourceProvider
		default:
			ev.Category = "azure"
		}
		ev.Message = operationName
		ev.Principal = r.Get("caller").String()
		ev.Origin = r.Get("callerIpAddress").String()
		if status != "" {
			ev.ErrorCode = status
		} else {
			ev.ErrorCode = resultType
		}
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = trimmed
		ev.StructuredData = trimmed

		level := r.Get("level").String()
		statusVal, sev := severityFromAzure(level, status)
		events.ApplyStatusSeverity(&ev, statusVal, sev)
		out = append(out, ev)
	}

	if len(out) == 0 && malformed == nonBlank && malformed > 0 {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable Azure Activity Log entries"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no azure activity log entries"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// Azure levels: Critical, Error, Warning, Informational, Verbose; a
// Failed/Failure status also counts as an error regardless of level.
func severityFromAzure(level, status string) (events.EventStatus, string) {
	switch level {
	case "Critical", "Error":
		return events.StatusError, events.SeverityError.String()
	case "Warning":
		return events.StatusWarning, events.SeverityWarning.String()
	}
	if status == "Failed" || status == "Failure" {
		return events.StatusError, events.SeverityError.String()
	}
	return events.StatusInfo, events.SeverityInfo.String()
}

var _ parser.ToolParser = (*Parser)(nil)
