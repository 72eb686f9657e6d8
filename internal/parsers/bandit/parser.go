// Package bandit implements the JSON-root parser for `bandit -f json`
// Python security-scan output (spec §4.4).
package bandit

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "bandit"
	priority   = parser.PriorityVeryHigh
)

type result struct {
	Filename      string `json:"filename"`
	IssueSeverity string `json:"issue_severity"`
	IssueConfidence string `json:"issue_confidence"`
	IssueText     string `json:"issue_text"`
	LineNumber    int    `json:"line_number"`
	ColOffset     int    `json:"col_offset"`
	TestID        string `json:"test_id"`
	TestName      string `json:"test_name"`
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
	return []parser.CommandPattern{parser.Like("bandit%-f json%"), parser.Like("bandit%--format json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"results"`) || !strings.Contains(content, `"issue_severity"`) {
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
		ev.RefFile = res.Filename
		ev.RefLine = sentinelIfZero(res.LineNumber)
		ev.RefColumn = sentinelIfZero(res.ColOffset)
		ev.ErrorCode = res.TestID
		ev.Message = res.IssueText
		ev.Category = res.TestName
		ev.Suggestion = "confidence: " + res.IssueConfidence
		status, sev := severityFromBandit(res.IssueSeverity)
		events.ApplyStatusSeverity(&ev, status, sev)
		out = append(out, ev)
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

// severityFromBandit maps bandit's LOW/MEDIUM/HIGH issue_severity (which
// shares no vocabulary with the canonical debug/info/warning/error/critical
// scale) onto the canonical pairing instead of the freeform
// parser.MapLevelToSeverity table.
func severityFromBandit(sev string) (events.EventStatus, string) {
	switch strings.ToUpper(sev) {
	case "HIGH":
		return events.StatusError, events.SeverityCritical.String()
	case "MEDIUM":
		return events.StatusError, events.SeverityError.String()
	default:
		return events.StatusWarning, events.SeverityWarning.String()
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
