// Package tfsec implements the JSON-root parser for `tfsec --format
// json` output (spec §4.4): a "results" array of Terraform security
// findings keyed by rule_id/severity/location.
package tfsec

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "tfsec"
	priority   = parser.PriorityVeryHigh
)

type location struct {
	Filename  string `json:"filename"`
	StartLine int    `json:"start_line"`
}

type result struct {
	RuleID          string   `json:"rule_id"`
	RuleDescription string   `json:"rule_description"`
	Description     string   `json:"description"`
	Resource        string   `json:"resource"`
	Severity        string   `json:"severity"`
	Location        location `json:"location"`
}

type report struct {
	Results []result `json:"results"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "security_scanner" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("tfsec%--format json%"), parser.Like("tfsec%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"results"`) || !strings.Contains(content, `"rule_id"`) {
		return false
	}
	var r report
	return json.Unmarshal([]byte(trimmed), &r) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var r report
	if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(r.Results) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no security findings"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	out := make([]events.ValidationEvent, 0, len(r.Results))
	for _, res := range r.Results {
		ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
		ev.RefFile = res.Location.Filename
		ev.RefLine = sentinelIfZero(res.Location.StartLine)
		ev.RefColumn = -1
		ev.ErrorCode = res.RuleID
		ev.FunctionName = res.Resource
		ev.Category = "infrastructure_security"
		msg := res.RuleDescription
		if res.Description != "" {
			if msg != "" {
				msg += ": " + res.Description
			} else {
				msg = res.Description
			}
		}
		ev.Message = msg
		status, sev := severityFromTfsec(res.Severity)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromTfsec(sev string) (events.EventStatus, string) {
	switch strings.ToUpper(sev) {
	case "CRITICAL":
		return events.StatusError, events.SeverityCritical.String()
	case "HIGH":
		return events.StatusError, events.SeverityError.String()
	case "MEDIUM", "":
		return events.StatusWarning, events.SeverityWarning.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

func sentinelIfZero(n int) int {
	if n <= 0 {
		return -1
	}
	return n
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ parser.ToolParser = (*Parser)(nil)
