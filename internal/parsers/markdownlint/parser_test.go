package markdownlint

import "testing"

const sample = `[{"fileName":"README.md","lineNumber":1,"errorRange":[1,6],"ruleNames":["MD041","first-line-heading"],"ruleDescription":"First line in a file should be a top-level heading","errorDetail":"Expected: # Heading"}]`

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
	if e.RefFile != "README.md" || e.ErrorCode != "MD041" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("markdownlint findings are always warnings, got %v", e.Status)
	}
}
