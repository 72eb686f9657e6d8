package iptables

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `Aug  1 10:00:00 host kernel: [12345.678] IPTABLES-DROP: IN=eth0 OUT= MAC=... SRC=203.0.113.5 DST=10.0.0.1 LEN=60 PROTO=TCP SPT=4321 DPT=22
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(evs), evs)
	}
	e := evs[0]
	if e.Origin != "203.0.113.5" || e.Target != "10.0.0.1" || e.ErrorCode != "22" {
		t.Errorf("field extraction mismatch: %+v", e)
	}
	if e.Status != events.StatusError {
		t.Errorf("expected DROP to classify as error, got %v", e.Status)
	}
}
