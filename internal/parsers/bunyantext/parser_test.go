package bunyantext

import "testing"

const sample = `[2025-01-15T10:30:45.123Z]  INFO: myapp/1234 on host1: server started
[2025-01-15T10:30:46.456Z] ERROR: myapp/1234 on host1: db connection refused
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
	if evs[0].Category != "myapp" || evs[0].Origin != "host1" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[1].Status.String() != "Error" {
		t.Errorf("expected error status, got %v", evs[1].Status)
	}
}
