package workflow

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

const gaZipBuildLog = `##[group]Build
##[command]go build ./...
##[endgroup]
`

const gaZipTestLog = `##[group]Test
##[command]go test ./...
##[endgroup]
##[group]Lint
##[endgroup]
`

func writeGithubActionsZipFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	entries := map[string]string{
		"0_build.txt":                   gaZipBuildLog,
		"1_test.txt":                    gaZipTestLog,
		"logs/0_build/1_Set up job.txt": "step metadata, should be skipped",
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return path
}

func TestGithubActionsZipParseWorkflowLogFromZip(t *testing.T) {
	path := writeGithubActionsZipFixture(t)

	inner := NewGithubActionsParser(nil)
	z := NewGithubActionsZipParser(inner)
	if !z.CanParse(path) {
		t.Fatal("expected detection by .zip suffix")
	}

	evs, err := z.ParseWorkflowLogFromZip(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) == 0 {
		t.Fatal("expected events from zip fan-out")
	}

	var sawBuild, sawTest bool
	for _, we := range evs {
		switch we.Event.JobName {
		case "build":
			sawBuild = true
			if we.Event.JobOrder != 0 {
				t.Errorf("expected job_order 0 for build, got %d", we.Event.JobOrder)
			}
		case "test":
			sawTest = true
			if we.Event.JobOrder != 1 {
				t.Errorf("expected job_order 1 for test, got %d", we.Event.JobOrder)
			}
		}
	}
	if !sawBuild {
		t.Error("expected events from 0_build.txt")
	}
	if !sawTest {
		t.Error("expected events from 1_test.txt")
	}
}
