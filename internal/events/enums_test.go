package events

import "testing"

func TestEventTypeRoundTrip(t *testing.T) {
	types := []EventType{
		EventTypeBuildError, EventTypeTestResult, EventTypeLintIssue,
		EventTypeSecurityFinding, EventTypePerformanceMetric,
		EventTypePerformanceIssue, EventTypeDebugInfo, EventTypeDebugEvent,
		EventTypeSummary,
	}
	for _, ty := range types {
		if got := EventTypeFromString(ty.String()); got != ty {
			t.Errorf("round trip %v: got %v", ty, got)
		}
	}
}

func TestEventTypeFromStringUnknown(t *testing.T) {
	if got := EventTypeFromString("NotAThing"); got != EventTypeUnknown {
		t.Errorf("expected EventTypeUnknown, got %v", got)
	}
}

func TestEventStatusRoundTrip(t *testing.T) {
	statuses := []EventStatus{StatusPass, StatusFail, StatusError, StatusWarning, StatusInfo, StatusSkip}
	for _, s := range statuses {
		if got := EventStatusFromString(s.String()); got != s {
			t.Errorf("round trip %v: got %v", s, got)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityDebug < SeverityInfo && SeverityInfo < SeverityWarning &&
		SeverityWarning < SeverityError && SeverityError < SeverityCritical) {
		t.Fatal("severity levels are not totally ordered as expected")
	}
}

func TestPassesThreshold(t *testing.T) {
	cases := []struct {
		severity  string
		threshold SeverityLevel
		want      bool
	}{
		{"info", SeverityInfo, true},
		{"warning", SeverityInfo, true},
		{"debug", SeverityInfo, false},
		{"error", SeverityWarning, true},
		{"warning", SeverityError, false},
		{"critical", SeverityCritical, true},
	}
	for _, c := range cases {
		if got := Passes(c.severity, c.threshold); got != c.want {
			t.Errorf("Passes(%q, %v) = %v, want %v", c.severity, c.threshold, got, c.want)
		}
	}
}

func TestWorkflowLogFormatRoundTrip(t *testing.T) {
	formats := []WorkflowLogFormat{
		WorkflowFormatAuto, WorkflowFormatGithubActions, WorkflowFormatGitlabCI,
		WorkflowFormatJenkins, WorkflowFormatDockerBuild, WorkflowFormatSpack,
		WorkflowFormatGithubActionsZip,
	}
	for _, f := range formats {
		if got := WorkflowLogFormatFromString(f.String()); got != f {
			t.Errorf("round trip %v: got %v", f, got)
		}
	}
}

func TestMakeEventSentinels(t *testing.T) {
	e := MakeEvent("eslint", EventTypeLintIssue)
	if e.RefLine != -1 || e.RefColumn != -1 || e.LogLineStart != -1 || e.LogLineEnd != -1 ||
		e.PatternID != -1 || e.JobOrder != -1 {
		t.Errorf("expected sentinel defaults, got %+v", e)
	}
	if e.ToolName != "eslint" || e.EventType != EventTypeLintIssue {
		t.Errorf("constructor did not set requested fields: %+v", e)
	}
}

func TestApplyStatusSeverityCoherence(t *testing.T) {
	var e ValidationEvent
	ApplyStatusSeverity(&e, StatusError, "warning")
	if e.Severity != "error" {
		t.Errorf("Error status must upgrade severity to at least error, got %q", e.Severity)
	}

	ApplyStatusSeverity(&e, StatusWarning, "")
	if e.Severity != "warning" {
		t.Errorf("Warning status must carry warning severity, got %q", e.Severity)
	}

	ApplyStatusSeverity(&e, StatusPass, "")
	if e.Severity != "info" {
		t.Errorf("Pass status must carry info severity, got %q", e.Severity)
	}
}
