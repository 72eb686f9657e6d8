// Package kubescore implements the JSON-root parser for `kube-score score
// -o json` output (spec §4.4). kube-score groups checks per Kubernetes
// object; each failed or warning check becomes one LintIssue event.
package kubescore

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "kube-score"
	priority   = parser.PriorityVeryHigh
)

type objectMeta struct {
	Name string `json:"name"`
}

type typeMeta struct {
	Kind string `json:"kind"`
}

type checkRef struct {
	Name     string `json:"name"`
	Comment  string `json:"comment"`
	Critical bool   `json:"critical"`
}

type checkResult struct {
	Check   checkRef `json:"check"`
	Grade   int      `json:"grade"`
	Comments []struct {
		Summary string `json:"summary"`
	} `json:"comments"`
	Skipped bool `json:"skipped"`
}

type scoredObject struct {
	ObjectMeta objectMeta    `json:"object_meta"`
	TypeMeta   typeMeta      `json:"type_meta"`
	Checks     []checkResult `json:"checks"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "static_analysis" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("kube-score%-o json%"), parser.Like("kube-score%--output-format json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	if !strings.Contains(content, `"object_meta"`) || !strings.Contains(content, `"checks"`) {
		return false
	}
	var objs []scoredObject
	return json.Unmarshal([]byte(trimmed), &objs) == nil
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}
	var objs []scoredObject
	if err := json.Unmarshal([]byte(trimmed), &objs); err != nil {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": malformed JSON root"
		ev.LogContent = truncate(content, 200)
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	var out []events.ValidationEvent
	for _, obj := range objs {
		for _, c := range obj.Checks {
			if c.Skipped || c.Grade == 10 {
				continue
			}
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = obj.TypeMeta.Kind + "/" + obj.ObjectMeta.Name
			ev.ErrorCode = c.Check.Name
			ev.Category = "kubernetes_manifest"
			ev.Message = c.Check.Comment
			if len(c.Comments) > 0 {
				ev.Message = c.Comments[0].Summary
			}
			status, sev := severityFromCheck(c)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no kube-score findings"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func severityFromCheck(c checkResult) (events.EventStatus, string) {
	if c.Check.Critical {
		return events.StatusError, events.SeverityCritical.String()
	}
	if c.Grade <= 1 {
		return events.StatusError, events.SeverityError.String()
	}
	return events.StatusWarning, events.SeverityWarning.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ parser.ToolParser = (*Parser)(nil)
