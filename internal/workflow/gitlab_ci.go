package workflow

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const gitlabCIFormat = "gitlab_ci"

var (
	glSectionStartRE = regexp.MustCompile(`^section_start:\d+:(\S+)\s*(?:\[[^\]]*\])?\r?$`)
	glSectionEndRE   = regexp.MustCompile(`^section_end:\d+:(\S+)\s*\r?$`)
	glExecutingRE    = regexp.MustCompile(`^Executing "([^"]+)" stage of the job script`)
	glErrorRE        = regexp.MustCompile(`(?i)^ERROR:\s*(.*)$`)
	glJobFailedRE    = regexp.MustCompile(`(?i)^(ERROR: Job failed.*)$`)
)

// GitlabCIParser parses GitLab CI job transcripts, delimited by
// `section_start:<ts>:<name>`/`section_end:<ts>:<name>` markers with an
// optional `[collapsed=true]` annotation, plus the "Executing ... stage"
// banner and ERROR lines GitLab's runner prints to stdout/stderr.
type GitlabCIParser struct {
	parser.BaseWorkflowParser
}

func NewGitlabCIParser() *GitlabCIParser {
	return &GitlabCIParser{BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: gitlabCIFormat}}
}

func (g *GitlabCIParser) FormatName() string { return gitlabCIFormat }
func (g *GitlabCIParser) Name() string       { return gitlabCIFormat }
func (g *GitlabCIParser) Priority() int      { return parser.PriorityHigh }

func (g *GitlabCIParser) CanParse(content string) bool {
	return strings.Contains(content, "section_start:") || strings.Contains(content, "section_end:") ||
		glExecutingRE.MatchString(content)
}

func (g *GitlabCIParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	currentSection := ""

	emit := func(eventType events.EventType, status events.EventStatus, severity, message string, level int, nl parser.NumberedLine) {
		ev := g.CreateBaseEvent(eventType)
		ev.Message = message
		ev.Scope = "pipeline"
		ev.Unit = currentSection
		ev.HierarchyLevel = level
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		events.ApplyStatusSeverity(&ev, status, severity)
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: gitlabCIFormat, HierarchyLevel: level, ParentID: "pipeline"})
	}

	for _, nl := range lines {
		line := strings.TrimRight(nl.Text, "\r")
		switch {
		case glSectionStartRE.MatchString(line):
			currentSection = glSectionStartRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "entering section: "+currentSection, 2, nl)
		case glSectionEndRE.MatchString(line):
			currentSection = ""
		case glExecutingRE.MatchString(line):
			stage := glExecutingRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "executing stage: "+stage, 1, nl)
		case glJobFailedRE.MatchString(line):
			emit(events.EventTypeBuildError, events.StatusError, "critical", line, 1, nl)
		case glErrorRE.MatchString(line):
			msg := glErrorRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeBuildError, events.StatusError, "error", msg, 3, nl)
		}
	}

	if len(out) == 0 {
		ev := g.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no gitlab ci markers recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: gitlabCIFormat})
	}
	return out, nil
}

var _ parser.WorkflowParser = (*GitlabCIParser)(nil)
