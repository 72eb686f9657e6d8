package hadolint

import "testing"

const sample = `[{"line":1,"code":"DL3006","message":"Always tag the version of an image explicitly","column":1,"file":"Dockerfile","level":"warning"}]`

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
	if e.ErrorCode != "DL3006" || e.RefFile != "Dockerfile" || e.Status.String() != "Warning" || e.Severity != "warning" {
		t.Errorf("mismatch: %+v", e)
	}
}
