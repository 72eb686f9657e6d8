package swiftlint

import "testing"

const sample = `[{"file":"App.swift","line":12,"character":5,"severity":"Warning","rule_id":"line_length","reason":"Line should be 120 characters or less"}]`

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
	if e.RefFile != "App.swift" || e.ErrorCode != "line_length" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("expected warning status, got %v", e.Status)
	}
}
