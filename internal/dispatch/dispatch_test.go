package dispatch

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/logvalidate/core/internal/bootstrap"
	"github.com/logvalidate/core/internal/registry"
	"github.com/logvalidate/core/internal/workflow"
)

func newTestDispatcher() *Dispatcher {
	tools := registry.New()
	wf := workflow.New()
	bootstrap.RegisterAllParsers(tools, wf)
	return New(tools, wf)
}

const eslintSample = `[{"filePath":"a.js","messages":[{"ruleId":"no-var","severity":2,"message":"bad","line":1,"column":1}]}]`

func TestParseAutoDetectsToolFormat(t *testing.T) {
	d := newTestDispatcher()
	evs, err := d.Parse(eslintSample, "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) == 0 || evs[0].ToolName != "eslint" {
		t.Errorf("expected eslint auto-detection, got %+v", evs)
	}
}

const ghaSample = `##[group]Build
##[command]echo hi
hi
##[endgroup]
`

func TestParseAutoDetectsWorkflowFormat(t *testing.T) {
	d := newTestDispatcher()
	evs, err := d.Parse(ghaSample, "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) == 0 || evs[0].WorkflowType != "github_actions" {
		t.Errorf("expected github_actions auto-detection, got %+v", evs)
	}
}

func TestParseExplicitUnknownFormatIsBinderError(t *testing.T) {
	d := newTestDispatcher()
	if _, err := d.Parse(eslintSample, "nosuchformat"); err == nil {
		t.Error("expected a binder error for an unknown format token")
	}
}

func TestParseEmptyContentIsSilentEmpty(t *testing.T) {
	d := newTestDispatcher()
	evs, err := d.Parse("   \n\n", "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) != 0 {
		t.Errorf("expected empty result for whitespace-only input, got %d events", len(evs))
	}
}

func TestReadGlobConcatenatesInMatchOrder(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"a.json", "b.json"} {
		_ = i
		if err := os.WriteFile(filepath.Join(dir, name), []byte(eslintSample), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	d := newTestDispatcher()
	evs, err := d.Read(filepath.Join(dir, "*.json"), "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) == 0 {
		t.Fatal("expected events from both glob matches")
	}
}

func writeZipFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("0_build.txt")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte("##[group]Build\n##[command]go build ./...\n##[endgroup]\n")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return path
}

func TestReadZipShortCircuitFlattensJobStamps(t *testing.T) {
	path := writeZipFixture(t)
	d := newTestDispatcher()

	evs, err := d.Read(path, "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evs) == 0 {
		t.Fatal("expected events from the zip fan-out")
	}
	for i, ev := range evs {
		if ev.EventID != int64(i+1) {
			t.Errorf("expected Flatten to assign sequential EventIDs, got %d at index %d", ev.EventID, i)
		}
		if ev.JobName != "build" {
			t.Errorf("expected job_name %q stamped from the zip entry, got %q", "build", ev.JobName)
		}
	}
}
