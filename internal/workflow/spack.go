package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const spackFormat = "spack"

var (
	spackPhaseRE   = regexp.MustCompile(`^==>\s+([\w.\-@+%]+):\s+Executing phase:\s+'([^']+)'`)
	spackCommandRE = regexp.MustCompile(`^==>\s+\[[^\]]*\]\s+'([^']+)'`)
	spackErrorRE   = regexp.MustCompile(`(?i)^==>\s+Error:\s*(.*)$`)
)

// SpackParser parses Spack build transcripts: `==> pkg: Executing
// phase: 'name'` bounds a phase (hierarchy level 2, "step" in spec
// terms), `==> [...] 'cmd' ...` lines announce a delegatable command the
// same way Jenkins' `+`/`$` prefixes do and, when a tool match is
// found, emit a level-3 anchor event that delegated level-4 events
// parent to, and `==> Error: ...` lines are top-level build failures.
type SpackParser struct {
	parser.BaseWorkflowParser
	findByCommand func(command string) parser.ToolParser
}

func NewSpackParser(findByCommand func(command string) parser.ToolParser) *SpackParser {
	return &SpackParser{
		BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: spackFormat},
		findByCommand:      findByCommand,
	}
}

func (s *SpackParser) FormatName() string { return spackFormat }
func (s *SpackParser) Name() string       { return spackFormat }
func (s *SpackParser) Priority() int      { return parser.PriorityMedium }

func (s *SpackParser) CanParse(content string) bool {
	return spackPhaseRE.MatchString(content) || strings.Contains(content, "==> Error:")
}

func (s *SpackParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	pkgName, phaseName, phaseID := "", "", ""
	phaseCount, cmdCount := 0, 0

	var delegatedTool parser.ToolParser
	var buffered []string
	delegateAnchorID := ""

	flushDelegate := func() {
		if delegatedTool == nil {
			return
		}
		evs, _ := delegatedTool.Parse(strings.Join(buffered, "\n"))
		for _, ev := range evs {
			ev.ToolName = delegatedTool.FormatName()
			ev.StructuredData = fmt.Sprintf(`{"delegated_format":%q}`, delegatedTool.FormatName())
			ev.Group = pkgName
			ev.Unit = phaseName
			ev.UnitID = phaseID
			parentID := phaseID
			if delegateAnchorID != "" {
				parentID = delegateAnchorID
			}
			out = append(out, parser.WorkflowEvent{
				Event:          ev,
				WorkflowType:   spackFormat,
				HierarchyLevel: 4,
				ParentID:       parentID,
			})
		}
		delegatedTool, buffered = nil, nil
		delegateAnchorID = ""
	}

	for _, nl := range lines {
		line := nl.Text
		switch {
		case spackPhaseRE.MatchString(line):
			flushDelegate()
			m := spackPhaseRE.FindStringSubmatch(line)
			pkgName, phaseName = m[1], m[2]
			phaseCount++
			phaseID = fmt.Sprintf("phase-%d", phaseCount)

			ev := s.CreateBaseEvent(events.EventTypeDebugInfo)
			ev.Message = fmt.Sprintf("%s: executing phase %s", pkgName, phaseName)
			ev.Group = pkgName
			ev.Unit = phaseName
			ev.UnitID = phaseID
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			events.ApplyStatusSeverity(&ev, events.StatusInfo, "")
			out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: spackFormat, HierarchyLevel: 2, ParentID: pkgName})

		case spackErrorRE.MatchString(line):
			flushDelegate()
			msg := spackErrorRE.FindStringSubmatch(line)[1]
			ev := s.CreateBaseEvent(events.EventTypeBuildError)
			ev.Message = msg
			ev.Group = pkgName
			ev.Unit = phaseName
			ev.UnitID = phaseID
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			events.ApplyStatusSeverity(&ev, events.StatusError, "error")
			parentID := "build"
			if phaseID != "" {
				parentID = phaseID
			}
			out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: spackFormat, HierarchyLevel: 1, ParentID: parentID})

		case spackCommandRE.MatchString(line):
			flushDelegate()
			cmd := spackCommandRE.FindStringSubmatch(line)[1]
			if s.findByCommand != nil {
				delegatedTool = s.findByCommand(cmd)
			}
			if delegatedTool != nil {
				cmdCount++
				cmdID := fmt.Sprintf("%s-cmd-%d", phaseID, cmdCount)
				anchor := s.CreateBaseEvent(events.EventTypeDebugInfo)
				anchor.Message = "running: " + cmd
				anchor.Group = pkgName
				anchor.Unit = cmd
				anchor.UnitID = cmdID
				anchor.LogLineStart = nl.Number
				anchor.LogLineEnd = nl.Number
				anchor.LogContent = nl.Text
				events.ApplyStatusSeverity(&anchor, events.StatusInfo, "")
				parentID := "build"
				if phaseID != "" {
					parentID = phaseID
				}
				out = append(out, parser.WorkflowEvent{Event: anchor, WorkflowType: spackFormat, HierarchyLevel: 3, ParentID: parentID})
				delegateAnchorID = cmdID
			}

		default:
			if delegatedTool != nil && strings.TrimSpace(line) != "" {
				buffered = append(buffered, line)
			}
		}
	}
	flushDelegate()

	if len(out) == 0 {
		ev := s.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no spack build markers recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: spackFormat})
	}
	return out, nil
}

var _ parser.WorkflowParser = (*SpackParser)(nil)
