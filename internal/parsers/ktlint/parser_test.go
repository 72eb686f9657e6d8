package ktlint

import "testing"

const sample = `[{"file":"Main.kt","errors":[{"line":1,"column":1,"rule":"no-wildcard-imports","message":"Wildcard import","detail":"import explicit classes instead"}]}]`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, err := p.Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
	e := evs[0]
	if e.RefFile != "Main.kt" || e.ErrorCode != "no-wildcard-imports" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("expected warning status, got %v", e.Status)
	}
}

func TestSeverityFromRuleIndent(t *testing.T) {
	status, _ := severityFromRule("indent")
	if status.String() != "Error" {
		t.Errorf("expected indent rule to be an error, got %v", status)
	}
}
