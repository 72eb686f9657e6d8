package gotest

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `{"Time":"2024-01-01T00:00:00Z","Action":"run","Package":"example.com/pkg","Test":"TestAdd"}
{"Time":"2024-01-01T00:00:00Z","Action":"output","Package":"example.com/pkg","Test":"TestAdd","Output":"--- FAIL: TestAdd\n"}
{"Time":"2024-01-01T00:00:01Z","Action":"fail","Package":"example.com/pkg","Test":"TestAdd","Elapsed":0.01}
`

func TestCanParseAndCorrelate(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, err := p.Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 1 {
		t.Fatalf("expected 1 correlated test result, got %d: %+v", len(evs), evs)
	}
	e := evs[0]
	if e.TestName != "TestAdd" || e.RefFile != "example.com/pkg" {
		t.Errorf("identity mismatch: %+v", e)
	}
	if e.Status != events.StatusFail {
		t.Errorf("expected fail status, got %v", e.Status)
	}
	if e.StartedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("expected start time carried from run line, got %q", e.StartedAt)
	}
	if e.LogContent == "" {
		t.Errorf("expected accumulated output on the correlated event")
	}
}

func TestPassingTestYieldsPassStatus(t *testing.T) {
	p := NewParser()
	input := `{"Action":"run","Package":"p","Test":"TestOK"}
{"Action":"pass","Package":"p","Test":"TestOK","Elapsed":0.01}
`
	evs, _ := p.Parse(input)
	if len(evs) != 1 || evs[0].Status != events.StatusPass {
		t.Fatalf("expected pass, got %+v", evs)
	}
}
