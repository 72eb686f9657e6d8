package sqlfluff

import "testing"

const sample = `[{"filepath":"q.sql","violations":[{"line_no":2,"line_pos":1,"code":"L010","description":"keywords should be consistently upper case"}]}]`

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
	if e.RefFile != "q.sql" || e.RefLine != 2 || e.ErrorCode != "L010" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("expected warning status, got %v", e.Status)
	}
}

func TestParseEmptyViolationsEmitsSummary(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`[{"filepath":"clean.sql","violations":[]}]`)
	if len(evs) != 1 || evs[0].EventType.String() != "Summary" {
		t.Fatalf("expected summary event, got %+v", evs)
	}
}
