// Package cargotest implements the JSONL parser for `cargo test --
// -Z unstable-options --format json` output (spec §4.4). Like gotest,
// each test's result is split into a "started" event and a terminal
// "ok"/"failed"/"ignored" event correlated by test name.
package cargotest

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "cargo-test"
	priority   = parser.PriorityHigh
)

type testLine struct {
	Type     string `json:"type"`
	Event    string `json:"event"`
	Name     string `json:"name"`
	Stdout   string `json:"stdout"`
	ExecTime float64 `json:"exec_time"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "test_framework" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("cargo test%--format json%"), parser.Like("cargo test%-Z unstable-options%")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikeCargoLine)
}

func looksLikeCargoLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var t testLine
	if json.Unmarshal([]byte(trimmed), &t) != nil {
		return false
	}
	return t.Type == "test" || t.Type == "suite"
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	started := map[string]bool{}
	var out []events.ValidationEvent
	malformed := 0

	for _, nl := range lines {
		trimmed := strings.TrimSpace(nl.Text)
		if trimmed == "" {
			continue
		}
		var t testLine
		if err := json.Unmarshal([]byte(trimmed), &t); err != nil {
			malformed++
			continue
		}
		if t.Type != "test" {
			continue
		}
		switch t.Event {
		case "started":
			started[t.Name] = true
		case "ok", "failed", "ignored":
			ev := events.MakeEvent(formatName, events.EventTypeTestResult)
			ev.TestName = t.Name
			ev.ExecutionTime = t.ExecTime
			ev.LogContent = t.Stdout
			if started[t.Name] {
				delete(started, t.Name)
			}
			status, sev := statusFromEvent(t.Event)
			events.ApplyStatusSeverity(&ev, status, sev)
			out = append(out, ev)
		}
	}

	if len(out) == 0 && malformed == len(lines) {
		ev := events.MakeEvent("parse_error", events.EventTypeDebugEvent)
		ev.Message = formatName + ": no recognizable test events"
		events.ApplyStatusSeverity(&ev, events.StatusError, "error")
		return []events.ValidationEvent{ev}, nil
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no test results"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

func statusFromEvent(event string) (events.EventStatus, string) {
	switch event {
	case "ok":
		return events.StatusPass, events.SeverityInfo.String()
	case "ignored":
		return events.StatusSkip, events.SeverityInfo.String()
	default:
		return events.StatusFail, events.SeverityError.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
