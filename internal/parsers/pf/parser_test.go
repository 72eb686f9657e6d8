package pf

import "testing"

const sample = `Jan 15 10:30:45 host pf: rule 3/0(match): block in on em0: 10.0.0.1.1234 > 10.0.0.2.80: S
Jan 15 10:30:46 host pf: rule 1/0(match): pass in on em0: 10.0.0.3.5555 > 10.0.0.4.443: S
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, err := p.Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Category != "em0" || evs[0].ErrorCode != "block" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[0].Status.String() != "Error" {
		t.Errorf("expected error status for block, got %v", evs[0].Status)
	}
	if evs[1].ErrorCode != "pass" || evs[1].Status.String() != "Warning" {
		t.Errorf("content mismatch: %+v", evs[1])
	}
}
