package rails

import "testing"

const sample = `Started GET "/users" for 127.0.0.1 at 2025-01-15 10:30:45 +0000
Processing by UsersController#index as HTML
Completed 200 OK in 45ms (Views: 30.2ms | ActiveRecord: 12.1ms)
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
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
	e := evs[0]
	if e.Category != "UsersController#index" || e.ErrorCode != "200" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Info" {
		t.Errorf("expected info status for a 200, got %v", e.Status)
	}
	if e.ExecutionTime != 0.045 {
		t.Errorf("expected execution_time 0.045 (seconds), got %v", e.ExecutionTime)
	}
}

func TestParseServerErrorIsError(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse("Started GET \"/boom\" for 127.0.0.1 at 2025-01-15 10:31:00 +0000\nCompleted 500 Internal Server Error in 5ms\n")
	if len(evs) != 1 || evs[0].Status.String() != "Error" {
		t.Fatalf("expected error status, got %+v", evs)
	}
}
