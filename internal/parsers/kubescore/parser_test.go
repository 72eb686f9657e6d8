package kubescore

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `[{"object_meta":{"name":"my-deploy"},"type_meta":{"kind":"Deployment"},"checks":[{"check":{"name":"container-resources","comment":"resources missing","critical":true},"grade":0,"comments":[{"summary":"CPU limit is not set"}]},{"check":{"name":"container-image-tag","critical":false},"grade":10,"comments":[]}]}]`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 1 || evs[0].ErrorCode != "container-resources" {
		t.Fatalf("mismatch: %+v", evs)
	}
	if evs[0].Status != events.StatusError || evs[0].Severity != "critical" {
		t.Fatalf("expected critical error, got %+v", evs[0])
	}
	if evs[0].Message != "CPU limit is not set" {
		t.Fatalf("unexpected message: %q", evs[0].Message)
	}
}

func TestAllPassingYieldsSummary(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`[{"object_meta":{"name":"x"},"type_meta":{"kind":"Pod"},"checks":[{"check":{"name":"ok"},"grade":10}]}]`)
	if len(evs) != 1 || evs[0].Status != events.StatusPass {
		t.Fatalf("expected pass summary, got %+v", evs)
	}
}
