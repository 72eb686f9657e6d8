// Package trivy implements the JSON-root parser for `trivy --format
// json` output (spec §4.4): a "Results" array, each entry holding a
// "Vulnerabilities" list (package CVEs) and/or a "Misconfigurations"
// list (IaC findings). Both feed SecurityFinding events under distinct
// categories.
package trivy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "trivy"
	priority   = parser.PriorityVeryHigh
)

type vulnerability struct {
	VulnerabilityID string `json:"VulnerabilityID"`
	PkgName         string `json:"PkgName"`
	Severity        string `json:"Severity"`
	Title           string `json:"Title"`
	Description     string `json:"Description"`
	InstalledVersion string `json:"InstalledVersion"`
	FixedVersion    string `json:"FixedVersion"`
}

type misconfiguration struct {
	ID          string `json:"ID"`
	Type        string `json:"Type"`
	Severity    string `json:"Severity"`
	Title       string `json:"Title"`
	Message     string `json:"Message"`
	Description string `json:"Description"`
	Resolution  string `json:"Resolution"`
}

type result struct {
	Target            string             `json:"Target"`
	Vulnerabilities   []vulnerability    `json:"Vulnerabilities"`
	Misconfigurations []misconfiguration `json:"Misconfigurations"`
}

type report struct {
	ArtifactName string   `json:"ArtifactName"`
	Results      []result `json:"Results"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "security_scanner" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("trivy%--format json%"), parser.Like("trivy%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"ArtifactName"`) || !strings.Contains(content, `"Results"`) {
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

	var out []events.ValidationEvent
	for _, res := range r.Results {
		for _, v := range res.Vulnerabilities {
			ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
			ev.RefFile = res.Target
			ev.RefLine = -1
			ev.RefColumn = -1
			ev.ErrorCode = v.VulnerabilityID
			ev.FunctionName = v.PkgName
			ev.Category = "vulnerability"
			msg := v.Title
			if msg == "" {
				msg = v.Description
			}
			ev.Message = msg
			if v.FixedVersion != "" {
				ev.Suggestion = fmt.Sprintf("Upgrade to version %s (current: %s)", v.FixedVersion, v.InstalledVersion)
			}
			status, sev := severityFromTrivy(v.Severity)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
		for _, m := range res.Misconfigurations {
			ev := events.MakeEvent(formatName, events.EventTypeSecurityFinding)
			ev.RefFile = res.Target
			ev.RefLine = -1
			ev.RefColumn = -1
			ev.ErrorCode = m.ID
			ev.FunctionName = m.Type
			ev.Category = "misconfiguration"
			msg := m.Title
			if m.Message != "" {
				msg = m.Message
			} else if msg == "" {
				msg = m.Description
			}
			ev.Message = msg
			ev.Suggestion = m.Resolution
			status, sev := severityFromTrivy(m.Severity)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no security findings"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromTrivy(sev string) (events.EventStatus, string) {
	switch strings.ToUpper(sev) {
	case "CRITICAL":
		return events.StatusError, events.SeverityCritical.String()
	case "HIGH":
		return events.StatusError, events.SeverityError.String()
	case "MEDIUM":
		return events.StatusWarning, events.SeverityWarning.String()
	case "LOW":
		return events.StatusInfo, events.SeverityInfo.String()
	default:
		return events.StatusWarning, events.SeverityWarning.String()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ parser.ToolParser = (*Parser)(nil)
