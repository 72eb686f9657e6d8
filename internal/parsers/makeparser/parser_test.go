package makeparser

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `make[1]: Entering directory '/src/pkg'
cc -c foo.c -o foo.o
make[1]: *** [Makefile:10: foo.o] Error 1
make[1]: Leaving directory '/src/pkg'
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 {
		t.Fatalf("expected 1 error event, got %d: %+v", len(evs), evs)
	}
	e := evs[0]
	if e.Status != events.StatusError || e.ErrorCode != "1" || e.RefFile != "/src/pkg" {
		t.Errorf("mismatch: %+v", e)
	}
}
