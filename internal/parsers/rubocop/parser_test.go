package rubocop

import "testing"

const sample = `{"files":[{"path":"app.rb","offenses":[{"severity":"warning","message":"Line is too long.","cop_name":"Layout/LineLength","location":{"line":5,"column":81}}]}]}`

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
	if e.RefFile != "app.rb" || e.RefLine != 5 || e.ErrorCode != "Layout/LineLength" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("expected warning, got %v", e.Status)
	}
}

func TestParseMalformedReportsParseError(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`{"files": not json`)
	if len(evs) != 1 || evs[0].ToolName != "parse_error" {
		t.Fatalf("expected parse_error event, got %+v", evs)
	}
}
