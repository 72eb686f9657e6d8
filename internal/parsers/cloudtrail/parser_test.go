package cloudtrail

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
)

const sample = `{"eventVersion":"1.08","eventTime":"2024-01-01T00:00:00Z","eventSource":"s3.amazonaws.com","eventName":"PutBucketPolicy","sourceIPAddress":"203.0.113.5","userIdentity":{"type":"IAMUser","arn":"arn:aws:iam::111122223333:user/alice"},"requestParameters":{"bucketName":"my-bucket"},"eventID":"abc-123"}
{"eventVersion":"1.08","eventTime":"2024-01-01T00:01:00Z","eventSource":"iam.amazonaws.com","eventName":"DeleteRole","errorCode":"AccessDenied","userIdentity":{"type":"IAMUser","arn":"arn:aws:iam::111122223333:user/mallory"},"sourceIPAddress":"198.51.100.2","requestParameters":{"roleName":"admin"},"eventID":"def-456"}
`

func TestCanParseAndParse(t *testing.T) {
	p := NewParser()
	if !p.CanParse(sample) {
		t.Fatal("expected detection")
	}
	evs, _ := p.Parse(sample)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Message != "PutBucketPolicy" || evs[0].Target != "my-bucket" {
		t.Errorf("record 1 mismatch: %+v", evs[0])
	}
	if evs[1].Status != events.StatusError || evs[1].Severity != "critical" {
		t.Errorf("expected AccessDenied to be critical, got %v/%s", evs[1].Status, evs[1].Severity)
	}
}
