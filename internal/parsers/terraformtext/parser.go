// Package terraformtext implements the regex-over-lines parser for
// `terraform plan`/`apply` human-readable console output (spec §4.4):
// "Error: message", "Warning: message", and the
// "  on file.tf line N, in block:" location continuation.
package terraformtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const (
	formatName = "terraform"
	priority   = parser.PriorityMedium
)

var (
	diagRE = regexp.MustCompile(`^(Error|Warning):\s*(.*)$`)
	onRE   = regexp.MustCompile(`^\s*on\s+(\S+)\s+line\s+(\d+)`)
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) FormatName() string { return formatName }
func (p *Parser) Name() string       { return formatName }
func (p *Parser) Category() string   { return "build_system" }
func (p *Parser) Priority() int      { return priority }

func (p *Parser) CommandPatterns() []parser.CommandPattern {
	return []parser.CommandPattern{parser.Like("terraform plan%"), parser.Like("terraform apply%")}
}

func (p *Parser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return diagRE.MatchString(strings.TrimSpace(l))
	})
}

func (p *Parser) Parse(content string) ([]events.ValidationEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}
	var out []events.ValidationEvent
	var pending *events.ValidationEvent
	flush := func() {
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
	}
	for _, nl := range lines {
		clean := parser.StripANSI(nl.Text)
		if m := diagRE.FindStringSubmatch(strings.TrimSpace(clean)); m != nil {
			flush()
			ev := events.MakeEvent(formatName, events.EventTypeBuildError)
			ev.Message = m[2]
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			if m[1] == "Warning" {
				events.ApplyStatusSeverity(&ev, events.StatusWarning, "")
			} else {
				events.ApplyStatusSeverity(&ev, events.StatusError, "error")
			}
			pending = &ev
			continue
		}
		if pending != nil {
			if m := onRE.FindStringSubmatch(clean); m != nil {
				pending.RefFile = m[1]
				if n, err := strconv.Atoi(m[2]); err == nil {
					pending.RefLine = n
				}
				pending.LogLineEnd = nl.Number
			}
		}
	}
	flush()
	if len(out) == 0 {
		ev := events.MakeEvent(formatName, events.EventTypeSummary)
		ev.Message = "no diagnostics found"
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
