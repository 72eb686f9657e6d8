// Package dockerbuildtext implements the regex-over-lines parser for
// classic (non-BuildKit) `docker build` text output (spec §4.4):
// "Step N/M : INSTRUCTION args" step headers, plus
// error/"returned a non-zero code" failure lines.
package dockerbuildtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "docker-build"
	priority   = parser.PriorityMedium
)

var (
	stepRE = regexp.MustCompile(`^Step (\d+)/(\d+)\s*:\s*(\S+)\s*(.*)$`)
	failRE = regexp.MustCompile(`(?i)(The command .* returned a non-zero code: (\d+)|failed to solve|error from daemon)`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "build_system" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Literal("docker build"), parser.Like("docker build%")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return stepRE.MatchString(l) || failRE.MatchString(l)
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	currentStep := ""
	for _, nl := range lines {
		clean := parser.StripANSI(nl.Text)
		if strings.TrimSpace(clean) == "" {
			continue
		}
		if m := stepRE.FindStringSubmatch(clean); m != nil {
			currentStep = m[3] + " " + m[4]
			ev := events.MakeEvent(formatName, events.EventTypeDebugInfo)
			ev.Message = currentStep
			ev.Category = "step " + m[1] + "/" + m[2]
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			events.ApplyStatusSeverity(&ev, events.StatusInfo, "")
			out = append(out, ev)
			continue
		}
		if m := failRE.FindStringSubmatch(clean); m != nil {
			ev := events.MakeEvent(formatName, events.EventTypeBuildError)
			ev.Message = clean
			ev.Category = currentStep
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			if m[2] != "" {
				if code, err := strconv.Atoi(m[2]); err == nil {
					ev.ErrorCode = strconv.Itoa(code)
				}
			}
			events.ApplyStatusSeverity(&ev, events.StatusError, "error")
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no build steps recognized"
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
