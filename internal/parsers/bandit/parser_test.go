package bandit

import "testing"

const sample = `{"results":[{"filename":"app.py","issue_severity":"HIGH","issue_confidence":"MEDIUM","issue_text":"Use of assert detected","line_number":10,"col_offset":0,"test_id":"B101","test_name":"assert_used"}]}`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, err := p.Parse(sample)
	if err != nil || len(evs) != 1 {
		t.Fatalf("unexpected: %v %v", evs, err)
	}
	e := evs[0]
	if e.ErrorCode != "B101" || e.RefLine != 10 || e.EventType.String() != "SecurityFinding" {
		t.Errorf("mismatch: %+v", e)
	}
	if e.Severity != "critical" {
		t.Errorf("HIGH severity should map to critical, got %q", e.Severity)
	}
}
