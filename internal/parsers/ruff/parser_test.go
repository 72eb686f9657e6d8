package ruff

import "testing"

const sample = `[{"code":"E501","message":"line too long","filename":"a.py","location":{"row":10,"column":89}}]`

func TestCanParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected CanParse to detect Ruff JSON")
	}
}

func TestParse(t *testing.T) {
	p := NewParser()
	evs, err := p.Parse(sample)
	if err != nil || len(evs) != 1 {
		t.Fatalf("unexpected result: %v %v", evs, err)
	}
	e := evs[0]
	if e.ErrorCode != "E501" || e.RefFile != "a.py" || e.RefLine != 10 || e.RefColumn != 89 {
		t.Errorf("mismatch: %+v", e)
	}
	if e.Status.String() != "Error" || e.Severity != "error" {
		t.Errorf("status/severity mismatch: %+v", e)
	}
}

func TestParseEmptyEmitsPass(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`[]`)
	if len(evs) != 1 || evs[0].Status.String() != "Pass" {
		t.Fatalf("expected pass summary, got %+v", evs)
	}
}
