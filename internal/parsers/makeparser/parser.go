// Package makeparser implements the regex-over-lines parser for GNU
// Make's own diagnostic lines (spec §4.4):
// "make: *** [target] Error N" and "make[N]: Entering/Leaving directory".
// It does not attempt to parse the underlying compiler output a recipe
// produces; that is each compiler's own parser's job when delegated to
// via a workflow step.
package makeparser

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "make"
	priority   = parser.PriorityMedium
)

var (
	errorRE = regexp.MustCompile(`^make(?:\[(\d+)\])?:\s+\*\*\*\s+\[([^\]]+)\]\s+Error\s+(\d+)`)
	dirRE   = regexp.MustCompile(`^make(?:\[(\d+)\])?:\s+(Entering|Leaving)\s+directory\s+'([^']+)'`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "build_system" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Literal("make"), parser.Like("make %")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return errorRE.MatchString(l) || dirRE.MatchString(l)
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	currentDir := ""
	for _, nl := range lines {
		clean := parser.StripANSI(nl.Text)
		if strings.TrimSpace(clean) == "" {
			continue
		}
		if m := dirRE.FindStringSubmatch(clean); m != nil {
			currentDir = m[3]
			continue
		}
		if m := errorRE.FindStringSubmatch(clean); m != nil {
			ev := events.MakeEvent(formatName, events.EventTypeBuildError)
			ev.Message = clean
			ev.FunctionName = m[2] // make target
			ev.RefFile = currentDir
			ev.ErrorCode = m[3]
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			events.ApplyStatusSeverity(&ev, events.StatusError, "error")
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no make errors found"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		return []events.ValidationEvent{ev}, nil
	}
	return out, nil
}

func (p *Parser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return p.Parse(content)
}
func (p *Parser) RequiresContext() bool { return false }

var _ parser.ToolParser = (*Parser)(nil)
