package serilog

import "testing"

const sample = `{"@t":"2025-01-15T10:30:45.000Z","@mt":"User {UserId} logged in","@l":"Information","SourceContext":"MyApp.Auth"}
{"@t":"2025-01-15T10:30:46.000Z","@mt":"Unhandled exception","@l":"Error","@x":"System.NullReferenceException"}
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
	if evs[0].Category != "MyApp.Auth" || evs[0].Status.String() != "Info" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[1].Status.String() != "Error" || evs[1].ErrorCode != "System.NullReferenceException" {
		t.Errorf("content mismatch: %+v", evs[1])
	}
}
