package tflint

import "testing"

const sample = `{"issues":[{"rule":{"name":"terraform_deprecated_interpolation","severity":"warning"},"message":"interpolation deprecated","range":{"filename":"main.tf","start":{"line":4,"column":3}}}],"errors":[]}`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 || evs[0].ErrorCode != "terraform_deprecated_interpolation" {
		t.Fatalf("mismatch: %+v", evs)
	}
}
