package lintr

import "testing"

const sample = `[{"filename":"a.R","line_number":10,"column_number":3,"linter":"object_name_linter","message":"variable names should be snake_case","type":"style","line":"myVar <- 1"}]`

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
	if e.RefFile != "a.R" || e.RefLine != 10 || e.RefColumn != 3 {
		t.Errorf("location mismatch: %+v", e)
	}
	if e.ErrorCode != "object_name_linter" || e.Status.String() != "Warning" {
		t.Errorf("content mismatch: %+v", e)
	}
}

func TestParseMalformedReportsParseError(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`[{"filename": not json`)
	if len(evs) != 1 || evs[0].ToolName != "parse_error" {
		t.Fatalf("expected parse_error event, got %+v", evs)
	}
}
