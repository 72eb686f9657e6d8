package stylelint

import "testing"

const sample = `[{"source":"style.css","warnings":[{"line":4,"column":2,"severity":"error","rule":"color-no-invalid-hex","text":"Unexpected invalid hex color"}]}]`

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
	if e.RefFile != "style.css" || e.ErrorCode != "color-no-invalid-hex" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Error" {
		t.Errorf("expected error status, got %v", e.Status)
	}
}
