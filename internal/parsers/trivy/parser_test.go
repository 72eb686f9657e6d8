package trivy

import "testing"

const sample = `{"ArtifactName":"myimage:latest","Results":[{"Target":"myimage:latest (alpine 3.18)","Vulnerabilities":[{"VulnerabilityID":"CVE-2023-1234","PkgName":"openssl","Severity":"HIGH","Title":"openssl buffer overflow","InstalledVersion":"1.1.1","FixedVersion":"1.1.2"}]}]}`

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
	if e.ErrorCode != "CVE-2023-1234" || e.FunctionName != "openssl" {
		t.Errorf("content mismatch: %+v", e)
	}
	if e.Status.String() != "Error" || e.Severity != "error" {
		t.Errorf("expected error severity, got %v/%s", e.Status, e.Severity)
	}
	if e.Suggestion == "" {
		t.Error("expected an upgrade suggestion")
	}
}

func TestParseMisconfigurations(t *testing.T) {
	p := NewParser()
	evs, _ := p.Parse(`{"ArtifactName":"repo","Results":[{"Target":"main.tf","Misconfigurations":[{"ID":"AVD-AWS-0001","Type":"terraform","Severity":"CRITICAL","Message":"public bucket"}]}]}`)
	if len(evs) != 1 || evs[0].Category != "misconfiguration" {
		t.Fatalf("expected 1 misconfiguration event, got %+v", evs)
	}
}
