package terraformtext

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `Error: Unsupported argument

  on main.tf line 12, in resource "aws_s3_bucket" "b":
  12:   bucket_name = "x"

Warning: Deprecated attribute

  on variables.tf line 3, in variable "region":
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %+v", len(evs), evs)
	}
	if evs[0].Status != events.StatusError || evs[0].RefFile != "main.tf" || evs[0].RefLine != 12 {
		t.Errorf("error diagnostic mismatch: %+v", evs[0])
	}
	if evs[1].Status != events.StatusWarning || evs[1].RefFile != "variables.tf" {
		t.Errorf("warning diagnostic mismatch: %+v", evs[1])
	}
}
