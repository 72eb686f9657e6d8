package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const jenkinsFormat = "jenkins"

var (
	jkStageRE   = regexp.MustCompile(`^\[Pipeline\]\s+stage\s*$`)
	jkStageName = regexp.MustCompile(`^\[Pipeline\]\s*\{\s*\(([^)]+)\)\s*$`)
	jkExecRE    = regexp.MustCompile(`^(?:\+|\$)\s+(.*)$`)
	jkErrorRE   = regexp.MustCompile(`(?i)^(ERROR:|FATAL:)\s*(.*)$`)
	jkFailedRE  = regexp.MustCompile(`(?i)^Finished:\s*(FAILURE|UNSTABLE|ABORTED)`)
)

// JenkinsParser parses Jenkins' declarative/scripted pipeline console
// output: `[Pipeline] stage` / `[Pipeline] { (Stage Name)` markers
// (hierarchy level 1), `+ cmd` (sh step echo) / `$ cmd` exec-prefixed
// lines (level 2) that delegate into the tool registry via a level-3
// anchor event, ERROR:/FATAL: lines (level 3), and the terminal
// `Finished: STATUS` banner (level 0).
type JenkinsParser struct {
	parser.BaseWorkflowParser
	findByCommand func(command string) parser.ToolParser
}

func NewJenkinsParser(findByCommand func(command string) parser.ToolParser) *JenkinsParser {
	return &JenkinsParser{
		BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: jenkinsFormat},
		findByCommand:      findByCommand,
	}
}

func (j *JenkinsParser) FormatName() string { return jenkinsFormat }
func (j *JenkinsParser) Name() string       { return jenkinsFormat }
func (j *JenkinsParser) Priority() int      { return parser.PriorityHigh }

func (j *JenkinsParser) CanParse(content string) bool {
	return strings.Contains(content, "[Pipeline]")
}

func (j *JenkinsParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	stageName, stageID := "", ""
	stageCount, execCount := 0, 0

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
			ev.Scope = "pipeline"
			ev.Group = stageName
			ev.GroupID = stageID
			ev.Unit = stageName
			ev.UnitID = stageID
			ev.StructuredData = fmt.Sprintf(`{"delegated_format":%q}`, delegatedTool.FormatName())
			parentID := stageID
			if delegateAnchorID != "" {
				parentID = delegateAnchorID
			}
			out = append(out, parser.WorkflowEvent{
				Event:          ev,
				WorkflowType:   jenkinsFormat,
				HierarchyLevel: 4,
				ParentID:       parentID,
			})
		}
		delegatedTool, buffered = nil, nil
		delegateAnchorID = ""
	}

	emit := func(eventType events.EventType, status events.EventStatus, severity, message string, level int, nl parser.NumberedLine) {
		ev := j.CreateBaseEvent(eventType)
		ev.Message = message
		ev.Scope = "pipeline"
		ev.Unit = stageName
		ev.UnitID = stageID
		ev.HierarchyLevel = level
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		events.ApplyStatusSeverity(&ev, status, severity)
		parentID := "pipeline"
		if level >= 2 {
			parentID = stageID
		}
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: jenkinsFormat, HierarchyLevel: level, ParentID: parentID})
	}

	for _, nl := range lines {
		line := nl.Text
		switch {
		case jkStageName.MatchString(line):
			flushDelegate()
			m := jkStageName.FindStringSubmatch(line)
			stageCount++
			stageName = m[1]
			stageID = fmt.Sprintf("stage-%d", stageCount)
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "entering stage: "+stageName, 1, nl)
		case jkStageRE.MatchString(line):
			// bare "[Pipeline] stage" announcement with no name on this line; ignored.
		case strings.HasPrefix(line, "[Pipeline]"):
			flushDelegate()
		case jkFailedRE.MatchString(line):
			flushDelegate()
			status := jkFailedRE.FindStringSubmatch(line)[1]
			s, sev := events.StatusError, events.SeverityError.String()
			if strings.EqualFold(status, "UNSTABLE") {
				s, sev = events.StatusWarning, events.SeverityWarning.String()
			}
			emit(events.EventTypeBuildError, s, sev, line, 0, nl)
		case jkErrorRE.MatchString(line):
			m := jkErrorRE.FindStringSubmatch(line)
			emit(events.EventTypeBuildError, events.StatusError, "error", m[2], 3, nl)
		case jkExecRE.MatchString(line):
			flushDelegate()
			cmd := jkExecRE.FindStringSubmatch(line)[1]
			execCount++
			execID := fmt.Sprintf("%s-exec-%d", stageID, execCount)
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "executing: "+cmd, 2, nl)
			if j.findByCommand != nil {
				delegatedTool = j.findByCommand(cmd)
			}
			if delegatedTool != nil {
				lineAnchorID := execID + "-line"
				anchor := j.CreateBaseEvent(events.EventTypeDebugInfo)
				anchor.Message = "invoking " + delegatedTool.FormatName() + ": " + cmd
				anchor.Scope = "pipeline"
				anchor.Unit = cmd
				anchor.UnitID = lineAnchorID
				anchor.LogLineStart = nl.Number
				anchor.LogLineEnd = nl.Number
				anchor.LogContent = nl.Text
				events.ApplyStatusSeverity(&anchor, events.StatusInfo, "")
				out = append(out, parser.WorkflowEvent{Event: anchor, WorkflowType: jenkinsFormat, HierarchyLevel: 3, ParentID: stageID})
				delegateAnchorID = lineAnchorID
			}
		default:
			if delegatedTool != nil && strings.TrimSpace(line) != "" {
				buffered = append(buffered, line)
			}
		}
	}
	flushDelegate()

	if len(out) == 0 {
		ev := j.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no jenkins pipeline markers recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: jenkinsFormat})
	}
	return out, nil
}

var _ parser.WorkflowParser = (*JenkinsParser)(nil)
