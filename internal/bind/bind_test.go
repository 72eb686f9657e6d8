package bind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logvalidate/core/internal/events"
)

func TestResolveSourceLiteralContent(t *testing.T) {
	r, err := ResolveSource("not a real path, just text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsZip || r.Content == "" {
		t.Errorf("expected literal content, got %+v", r)
	}
}

func TestResolveSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := ResolveSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Content != "hello" {
		t.Errorf("expected file content read, got %q", r.Content)
	}
}

func TestResolveSourceZipPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.zip")
	if err := os.WriteFile(path, []byte("PK\x03\x04"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := ResolveSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsZip || r.ZipPath != path {
		t.Errorf("expected zip routing, got %+v", r)
	}
}

func TestResolveSourceDeferredScheme(t *testing.T) {
	if _, err := ResolveSource("s3://bucket/key.log"); err == nil {
		t.Error("expected an error for a virtual URI scheme")
	}
}

func TestProjectSentinelToNull(t *testing.T) {
	ev := events.MakeEvent("eslint", events.EventTypeLintIssue)
	ev.EventID = 1
	row := Project(ev)

	byName := map[string]column{}
	for _, c := range row {
		byName[c.Name] = c
	}

	if !byName["ref_line"].IsNull {
		t.Error("expected ref_line (-1 sentinel) to project as null")
	}
	if byName["event_id"].IsNull {
		t.Error("expected event_id to never be null")
	}
	if !byName["job_name"].IsNull {
		t.Error("expected empty job_name to project as null")
	}
	if len(row) != 44 {
		t.Errorf("expected 44 columns, got %d", len(row))
	}
}
