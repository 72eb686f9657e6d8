package auditd

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `type=USER_AUTH msg=audit(1700000000.123:456): pid=1234 uid=0 auid=1000 success=no exe="/bin/su" hostname=host01
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
	if e.Category != "USER_AUTH" || e.ExternalID != "456" || e.Target != "/bin/su" || e.Principal != "1000" {
		t.Errorf("field extraction mismatch: %+v", e)
	}
	if e.Status != events.StatusError {
		t.Errorf("expected success=no to classify as error, got %v", e.Status)
	}
}
