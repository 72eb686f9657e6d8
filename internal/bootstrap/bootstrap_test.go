package bootstrap

import (
	"testing"

	"github.com/logvalidate/core/internal/registry"
	"github.com/logvalidate/core/internal/workflow"
)

func TestRegisterAllParsers(t *testing.T) {
	tools := registry.New()
	wf := workflow.New()
	RegisterAllParsers(tools, wf)

	if got, want := tools.ParserCount(), 46; got != want {
		t.Errorf("tool registry: got %d parsers, want %d", got, want)
	}
	if got, want := wf.ParserCount(), 7; got != want {
		t.Errorf("workflow registry: got %d parsers, want %d", got, want)
	}

	if tools.GetParser("eslint") == nil {
		t.Error("expected eslint registered under its format name")
	}
	for _, name := range []string{"rubocop", "trivy", "clippy", "bunyan", "gcp", "azure", "ruby-logger", "pf", "vpcflow"} {
		if tools.GetParser(name) == nil {
			t.Errorf("expected %s registered under its format name", name)
		}
	}
	if wf.GetParser("github_actions_zip") == nil {
		t.Error("expected github_actions_zip registered under its format name")
	}

	delegate := tools.FindParserByCommand("go test -json ./...")
	if delegate == nil {
		t.Error("expected FindParserByCommand to resolve a go-test delegate")
	}
}
