// Package phpstan implements the JSON-root parser for `phpstan analyse
// --error-format json` output (spec §4.4): a "files" map keyed by path,
// each holding a "messages" array. A message's "ignorable" flag
// distinguishes a soft warning from a hard error.
package phpstan

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "phpstan"
	priority   = parser.PriorityVeryHigh
)

type message struct {
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Ignorable bool   `json:"ignorable"`
	Tip       string `json:"tip"`
}

type fileEntry struct {
	Messages []message `json:"messages"`
}

type report struct {
	Files map[string]fileEntry `json:"files"`
}

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "linting_tool" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("phpstan%--error-format json%"), parser.Like("phpstan%analyse%json%")}
}

func (p *Parser) CanParse(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	if !strings.Contains(content, `"files"`) || !strings.Contains(content, `"messages"`) {
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
	for path, entry := range r.Files {
		if len(entry.Messages) == 0 {
			continue
		}
		for _, m := range entry.Messages {
			ev := events.MakeEvent(formatName, events.EventTypeLintIssue)
			ev.RefFile = path
			ev.RefLine = sentinelIfZero(m.Line)
			ev.RefColumn = -1
			ev.Message = m.Message
			ev.Suggestion = m.Tip
			ev.Category = "php_static_analysis"
			ev.StructuredData = `{"tool":"phpstan","ignorable":` + strconv.FormatBool(m.Ignorable) + `}`
			if m.Ignorable {
				events.ApplyStatusSeverity(&ev, events.StatusWarning, events.SeverityWarning.String())
			} else {
				events.ApplyStatusSeverity(&ev, events.StatusError, events.SeverityError.String())
			}
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no lint issues"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

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
