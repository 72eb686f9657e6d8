package shellcheck

import "testing"

const sample = `[{"file":"deploy.sh","line":3,"endLine":3,"column":1,"endColumn":10,"level":"warning","code":2086,"message":"Double quote to prevent globbing"}]`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 || evs[0].ErrorCode != "SC2086" {
		t.Fatalf("mismatch: %+v", evs)
	}
}
