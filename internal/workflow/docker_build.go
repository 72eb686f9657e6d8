package workflow

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

const dockerBuildFormat = "docker_build"

var (
	dockerLegacyStepRE = regexp.MustCompile(`^Step (\d+)/(\d+)\s*:\s*(\S+)\s*(.*)$`)
	dockerBuildKitRE   = regexp.MustCompile(`^#(\d+)\s+\[([^\]]+)\]\s*(.*)$`)
	dockerFromAsRE     = regexp.MustCompile(`(?i)^FROM\s+\S+\s+AS\s+(\S+)`)
	dockerFailRE       = regexp.MustCompile(`(?i)(returned a non-zero code: (\d+)|failed to solve|process ".*" did not complete successfully: exit code: (\d+))`)
)

// DockerBuildParser parses both classic `docker build` ("Step N/M :")
// transcripts and BuildKit's `#n [stage step/total] command` transcripts,
// each step becoming a hierarchy_level=2 unit under a synthetic
// "stage" group keyed by the multi-stage name introduced by a
// `FROM ... AS name` line (or "default" when the build is single-stage).
type DockerBuildParser struct {
	parser.BaseWorkflowParser
}

func NewDockerBuildParser() *DockerBuildParser {
	return &DockerBuildParser{BaseWorkflowParser: parser.BaseWorkflowParser{ToolName: dockerBuildFormat}}
}

func (d *DockerBuildParser) FormatName() string { return dockerBuildFormat }
func (d *DockerBuildParser) Name() string       { return dockerBuildFormat }
func (d *DockerBuildParser) Priority() int      { return parser.PriorityMedium }

func (d *DockerBuildParser) CanParse(content string) bool {
	return parser.MatchRatio(content, 15, func(l string) bool {
		return dockerLegacyStepRE.MatchString(l) || dockerBuildKitRE.MatchString(l)
	})
}

func (d *DockerBuildParser) ParseWorkflowLog(content string) ([]parser.WorkflowEvent, error) {
	lines := parser.Lines(content)
	if len(lines) == 0 {
		return nil, nil
	}

	var out []parser.WorkflowEvent
	stage := "default"
	currentStep := ""

	emit := func(eventType events.EventType, status events.EventStatus, severity, message string, level int, nl parser.NumberedLine) {
		ev := d.CreateBaseEvent(eventType)
		ev.Message = message
		ev.Group = stage
		ev.Unit = currentStep
		ev.HierarchyLevel = level
		ev.LogLineStart = nl.Number
		ev.LogLineEnd = nl.Number
		ev.LogContent = nl.Text
		events.ApplyStatusSeverity(&ev, status, severity)
		parentID := "image"
		if level >= 2 {
			parentID = stage
		}
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: dockerBuildFormat, HierarchyLevel: level, ParentID: parentID})
	}

	for _, nl := range lines {
		line := strings.TrimSpace(nl.Text)
		switch {
		case dockerLegacyStepRE.MatchString(line):
			m := dockerLegacyStepRE.FindStringSubmatch(line)
			currentStep = m[3] + " " + m[4]
			if as := dockerFromAsRE.FindStringSubmatch(currentStep); as != nil {
				stage = as[1]
			}
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", currentStep, 2, nl)
		case dockerBuildKitRE.MatchString(line):
			m := dockerBuildKitRE.FindStringSubmatch(line)
			stage = m[2]
			currentStep = m[3]
			if as := dockerFromAsRE.FindStringSubmatch(currentStep); as != nil {
				stage = as[1]
			}
			emit(events.EventTypeDebugInfo, events.StatusInfo, "", currentStep, 2, nl)
		case dockerFailRE.MatchString(line):
			m := dockerFailRE.FindStringSubmatch(line)
			ev := d.CreateBaseEvent(events.EventTypeBuildError)
			ev.Message = line
			ev.Group = stage
			ev.Unit = currentStep
			ev.LogLineStart = nl.Number
			ev.LogLineEnd = nl.Number
			ev.LogContent = nl.Text
			if code := firstNonEmpty(m[2], m[3]); code != "" {
				if n, err := strconv.Atoi(code); err == nil {
					ev.ErrorCode = strconv.Itoa(n)
				}
			}
			events.ApplyStatusSeverity(&ev, events.StatusError, "error")
			out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: dockerBuildFormat, HierarchyLevel: 3, ParentID: stage})
		}
	}

	if len(out) == 0 {
		ev := d.CreateBaseEvent(events.EventTypeSummary)
		ev.Message = "no docker build steps recognized"
		events.ApplyStatusSeverity(&ev, events.StatusPass, "")
		out = append(out, parser.WorkflowEvent{Event: ev, WorkflowType: dockerBuildFormat})
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ parser.WorkflowParser = (*DockerBuildParser)(nil)
