package tfsec

import "testing"

const sample = `{"results":[{"rule_id":"AVD-AWS-0089","rule_description":"S3 bucket has logging disabled","resource":"aws_s3_bucket.data","severity":"MEDIUM","location":{"filename":"main.tf","start_line":10}}]}`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, err := p.Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
	e := evs[0]
	if e.RefFile != "main.tf" || e.RefLine != 10 || e.ErrorCode != "AVD-AWS-0089" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Warning" {
		t.Errorf("expected MEDIUM severity to map to warning, got %v", e.Status)
	}
}

func TestParseNoResultsEmitsSummary(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`{"results":[]}`)
	if len(evs) != 1 || evs[0].EventType.String() != "Summary" {
		t.Fatalf("expected summary event, got %+v", evs)
	}
}
