package yamllint

import "testing"

const sample = `[{"file":"config.yaml","line":3,"column":1,"rule":"trailing-spaces","level":"error","message":"trailing spaces","type":"trailing-spaces"}]`

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
	if e.RefFile != "config.yaml" || e.ErrorCode != "trailing-spaces" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Error" {
		t.Errorf("expected error status, got %v", e.Status)
	}
}
