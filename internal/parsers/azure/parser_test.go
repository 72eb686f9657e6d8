package azure

import "testing"

const sample = `{"operationName":"Microsoft.Compute/virtualMachines/write","resourceId":"/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm1","level":"Informational","status":"Succeeded","caller":"user@example.com","callerIpAddress":"1.2.3.4","category":"Administrative"}
{"operationName":"Microsoft.Storage/storageAccounts/delete","resourceId":"/subscriptions/s/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/sa1","level":"Error","status":"Failed"}
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
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Principal != "user@example.com" || evs[0].Origin != "1.2.3.4" {
		t.Errorf("content mismatch: %+v", evs[0])
	}
	if evs[1].Status.String() != "Error" || evs[1].ErrorCode != "Failed" {
		t.Errorf("content mismatch: %+v", evs[1])
	}
}
