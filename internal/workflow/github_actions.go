package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const githubActionsFormat = "github_actions"

var (
	gaGroupStartRE = regexp.MustCompile(`^##\[group\](.*)$`)
	gaGroupEndRE   = regexp.MustCompile(`^##\[endgroup\]$`)
	gaErrorRE      = regexp.MustCompile(`^##\[error\](.*)$`)
	gaWarningRE    = regexp.MustCompile(`^##\[warning\](.*)$`)
	gaCommandRE    = regexp.MustCompile(`^##\[command\](.*)$`)
	gaTimestampRE  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d+Z)\s*(.*)$`)
)

// GithubActionsParser parses GitHub Actions' run-log transcript format:
// `##[group]Step name` / `##[endgroup]` delimited step sections with
// `##[error]`/`##[warning]`/`##[command]` annotation lines inside.
// `##[command]` lines announce the shell command about to run; this
// parser buffers the plain-output lines that follow and, if the command
// matches a registered tool parser's CommandPatterns, delegates that
// buffered output to it (spec §4.5).
type GithubActionsParser struct {
	parser.BaseWorkflowParser
	findByCommand func(command string) parser.ToolParser
}

func NewGithubActionsParser(findByCommand func(command string) parser.ToolParser) *GithubActionsParser {
	return &GithubActionsParser{
		BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: githubActionsFormat},
		findByCommand:      findByCommand,
	}
}

func (g *GithubActionsParser) FormatName() string { return githubActionsFormat }
func (g *GithubActionsParser) Name() string       { return githubActionsFormat }
func (g *GithubActionsParser) Priority() int      { return parser.PriorityHigh }

func (g *GithubActionsParser) CanParse(content string) bool {
	return strings.Contains(content, "##[group]") || strings.Contains(content, "##[endgroup]") ||
		strings.Contains(content, "##[error]") || strings.Contains(content, "##[command]")
}

func (g *GithubActionsParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	stepName, stepID := "", ""
	stepCount, cmdCount := 0, 0

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
			ev.Scope = "workflow"
			ev.Unit = stepName
			ev.UnitID = stepID
			ev.StructuredData = fmt.Sprintf(`{"delegated_format":%q}`, delegatedTool.FormatName())
			parentID := stepID
			if delegateAnchorID != "" {
				parentID = delegateAnchorID
			}
			out = append(out, parser.WorkflowEvent{
				Event:          ev,
				WorkflowType:   githubActionsFormat,
				HierarchyLevel: 4,
				ParentID:       parentID,
			})
		}
		delegatedTool, buffered = nil, nil
		delegateAnchorID = ""
	}

	emit := func(eventType events.EventType, status events.EventStatus, severity, message string, level int, nl parser.NumberedLine) {
		ev := g.CreateBaseEvent(eventType)
		ev.Message = message
		ev.Scope = "workflow"
		ev.Unit = stepName
		ev.UnitID = stepID
		ev.HierarchyLevel = level
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		events.ApplyStatusSeverity(&ev, status, severity)
		parentID := "workflow"
		if level >= 2 {
			parentID = stepID
		}
		out = append(out, parser.WorkflowEvent{
			Event:          ev,
			WorkflowType:   githubActionsFormat,
			HierarchyLevel: level,
			ParentID:       parentID,
		})
	}

	for _, nl := range lines {
		line := nl.Text
		if m := gaTimestampRE.FindStringSubmatch(line); m != nil {
			line = m[2]
		}

		switch {
		case gaGroupStartRE.MatchString(line):
			flushDelegate()
			m := gaGroupStartRE.FindStringSubmatch(line)
			stepCount++
			stepName = m[1]
			stepID = fmt.Sprintf("step-%d", stepCount)
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "starting step: "+stepName, 1, nl)
		case gaGroupEndRE.MatchString(line):
			flushDelegate()
			stepName, stepID = "", ""
		case gaErrorRE.MatchString(line):
			msg := gaErrorRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeBuildError, events.StatusError, "error", msg, 3, nl)
		case gaWarningRE.MatchString(line):
			msg := gaWarningRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeDebugInfo, events.StatusWarning, "warning", msg, 3, nl)
		case gaCommandRE.MatchString(line):
			flushDelegate()
			cmd := gaCommandRE.FindStringSubmatch(line)[1]
			cmdCount++
			cmdID := fmt.Sprintf("%s-cmd-%d", stepID, cmdCount)
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "running command: "+cmd, 2, nl)
			if g.findByCommand != nil {
				delegatedTool = g.findByCommand(cmd)
			}
			if delegatedTool != nil {
				lineAnchorID := cmdID + "-line"
				anchor := g.CreateBaseEvent(events.EventTypeDebugInfo)
				anchor.Message = "invoking " + delegatedTool.FormatName() + ": " + cmd
				anchor.Scope = "workflow"
				anchor.Unit = cmd
				anchor.UnitID = lineAnchorID
				anchor.LogLineStart = nl.Number
				anchor.LogLineEnd = nl.Number
				anchor.LogContent = nl.Text
				events.ApplyStatusSeverity(&anchor, events.StatusInfo, "")
				out = append(out, parser.WorkflowEvent{Event: anchor, WorkflowType: githubActionsFormat, HierarchyLevel: 3, ParentID: stepID})
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
		ev := g.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no github actions annotations recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: githubActionsFormat})
	}
	return out, nil
}

var _ parser.WorkflowParser = (*GithubActionsParser)(nil)
