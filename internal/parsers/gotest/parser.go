// Package gotest implements the JSONL parser for `go test -json` output
// (spec §4.4, scenario S2). Each line is one TestEvent record; a single
// test's result is spread across multiple lines (run/pause/cont/output*
// /pass|fail|skip), keyed by (Package, Test). This parser correlates the
// terminal action back to the original "run" line so the emitted event
// carries both the test name and its accumulated output.
package gotest

import (
	"encoding/json"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "go-test"
	priority   = parser.PriorityHigh
)

type testEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Output  string  `json:"Output"`
	Elapsed float64 `json:"Elapsed"`
	Time    string  `json:"Time"`
}

type accum struct {
	output    strings.Builder
	startedAt string
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "test_framework" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("go test%-json%"), parser.Like("go test%-v -json%")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 10, looksLikeGoTestLine)
}

func looksLikeGoTestLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var e testEvent
	if json.Unmarshal([]byte(trimmed), &e) != nil {
		return false
	}
	switch e.Action {
	case "run", "pass", "fail", "skip", "output", "start", "pause", "cont":
		return true
	}
	return false
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	accums := map[string]*accum{}
	var out []events.ValidationEvent
	malformed := 0

	for _, nl := range lines {
		trimmed := strings.TrimSpace(nl.Text)
		if trimmed == "" {
			continue
		}
		var e testEvent
		if err := json.Unmarshal([]byte(trimmed), &e); err != nil {
			malformed++
			continue
		}
		if e.Test == "" {
			continue // package-level events carry no per-test outcome
		}
		key := e.Package + "\x00" + e.Test
		switch e.Action {
		case "run":
			accums[key] = &accum{startedAt: e.Time}
		case "output":
			if a, ok := accums[key]; ok {
				a.output.WriteString(e.Output)
			}
		case "pass", "fail", "skip":
			ev := events.MakeEvent(formatName, events.EventTypeTestResult)
			ev.TestName = e.Test
			ev.RefFile = e.Package
			ev.ExecutionTime = e.Elapsed
			if a, ok := accums[key]; ok {
				ev.LogContent = a.output.String()
				ev.StartedAt = a.startedAt
				delete(accums, key)
			}
			status, sev := statusFromAction(e.Action)
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

func statusFromAction(action string) (events.EventStatus, string) {
	switch action {
	case "pass":
		return events.StatusPass, events.SeverityInfo.String()
	case "skip":
		return events.StatusSkip, events.SeverityInfo.String()
	default:
		return events.StatusFail, events.SeverityError.String()
	}
}

var _ parser.ToolParser = (*Parser)(nil)
