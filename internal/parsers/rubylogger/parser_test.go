package rubylogger

import "testing"

const sample = `I, [2025-01-15T10:30:45.123456 #1234]  INFO -- myapp: User logged in
E, [2025-01-15T10:30:46.456789 #1234] ERROR -- myapp: Connection failed
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
	if evs[0].Category != "myapp" || evs[0].Status.String() != "Info" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[1].Status.String() != "Error" || evs[1].Message != "Connection failed" {
		t.Errorf("content mismatch: %+v", evs[1])
	}
}
