package workflow

import (
	"regexp"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const droneFormat = "drone"

var (
	droneStepRE   = regexp.MustCompile(`^\+\s+(.*)$`)
	droneExitRE   = regexp.MustCompile(`(?i)exit (?:status|code)\s+(\d+)`)
	droneFinishRE = regexp.MustCompile(`(?i)^(exec: "[^"]+": exit status \d+|pipeline (?:failed|exited with non-zero status).*)$`)
)

// DroneParser parses Drone CI's step console output: `+ command` echo
// lines per executed shell step and a terminal "exit status N" or
// "pipeline failed" banner. Drone's log stream does not group steps with
// start/end markers the way GitHub Actions or GitLab do, so each `+`
// line simply starts a new "current step" context that subsequent plain
// output lines attach to until the next `+` line.
type DroneParser struct {
	parser.BaseWorkflowParser
}

func NewDroneParser() *DroneParser {
	return &DroneParser{BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: droneFormat}}
}

func (d *DroneParser) FormatName() string { return droneFormat }
func (d *DroneParser) Name() string       { return droneFormat }
func (d *DroneParser) Priority() int      { return parser.PriorityMedium }

func (d *DroneParser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return droneStepRE.MatchString(l) || droneFinishRE.MatchString(l)
	})
}

func (d *DroneParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	currentCmd := ""
	stepCount := 0

	emit := func(eventType events.EventType, status events.EventStatus, severity, message string, level int, nl parser.NumberedLine) {
		ev := d.CreateBaseEvent(eventType)
		ev.Message = message
		ev.Scope = "pipeline"
		ev.Unit = currentCmd
		ev.HierarchyLevel = level
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		events.ApplyStatusSeverity(&ev, status, severity)
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: droneFormat, HierarchyLevel: level, ParentID: "pipeline"})
	}

	for _, nl := range lines {
		line := nl.Text
		switch {
		case droneStepRE.MatchString(line):
			stepCount++
			currentCmd = droneStepRE.FindStringSubmatch(line)[1]
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", "running: "+currentCmd, 2, nl)
		case droneFinishRE.MatchString(line):
			code := droneExitRE.FindStringSubmatch(line)
			status, sev := events.StatusError, events.SeverityError.String()
			if code == nil || code[1] == "0" {
				status, sev = events.StatusPass, events.SeverityInfo.String()
			}
			emit(events.EventTypeBuildError, status, sev, line, 1, nl)
		}
	}

	if stepCount == 0 && len(out) == 0 {
		ev := d.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no drone ci markers recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: droneFormat})
	}
	return out, nil
}

var _ parser.WorkflowParser = (*DroneParser)(nil)
