package phpstan

import "testing"

const sample = `{"files":{"src/App.php":{"messages":[{"message":"Variable $x might not be defined.","line":42,"ignorable":true,"tip":"Add a default value."}]}}}`

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
	if e.RefFile != "src/App.php" || e.RefLine != 42 || e.Suggestion != "Add a default value." {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("ignorable messages should be warnings, got %v", e.Status)
	}
}

func TestParseNonIgnorableIsError(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`{"files":{"a.php":{"messages":[{"message":"Fatal type mismatch","line":1,"ignorable":false}]}}}`)
	if len(evs) != 1 || evs[0].Status.String() != "Error" {
		t.Fatalf("expected error status, got %+v", evs)
	}
}
