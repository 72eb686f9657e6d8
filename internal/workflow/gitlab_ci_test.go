package workflow

import "testing"

const glSample = `Executing "step_script" stage of the job script
section_start:1700000000:build_job
$ make build
section_end:1700000000:build_job
ERROR: Job failed: exit code 1
`

func TestGitlabCIParseWorkflowLog(t *testing.T) {
	p := NewGitlabCIParser()
	if !p.CanParse(glSample) {
		t.Fatal("expected detection")
	}
	evs, err := p.ParseWorkflowLog(glSample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foundCritical := false
	for _, we := range evs {
		if we.Event.Severity == "critical" {
			foundCritical = true
		}
	}
	if !foundCritical {
		t.Errorf("expected a critical job-failed event, got %+v", evs)
	}
}
