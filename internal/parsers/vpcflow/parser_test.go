package vpcflow

import "testing"

const sample = `2 123456789010 eni-1234abcd 10.0.0.1 10.0.0.2 20641 22 6 20 4249 1418530010 1418530070 ACCEPT OK
2 123456789010 eni-1234abcd 10.0.0.3 10.0.0.4 443 54321 17 5 200 1418530010 1418530070 REJECT OK
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
	if evs[0].Origin != "10.0.0.1" || evs[0].Target != "10.0.0.2" || evs[0].Category != "TCP" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[0].Status.String() != "Info" {
		t.Errorf("expected info status for ACCEPT, got %v", evs[0].Status)
	}
	if evs[1].Category != "UDP" || evs[1].Status.String() != "Warning" {
		t.Errorf("content mismatch for REJECT record: %+v", evs[1])
	}
}
