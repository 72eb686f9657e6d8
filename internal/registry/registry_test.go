package registry

import (
	"testing"

	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/parser"
)

type fakeParser struct {
	name     string
	priority int
	canParse func(string) bool
	patterns []parser.CommandPattern
}

func (f fakeParser) CanParse(content string) bool { return f.canParse(content) }
func (f fakeParser) Parse(content string) ([]events.ValidationEvent, error) {
	return nil, nil
}
func (f fakeParser) ParseWithContext(_ *parser.Context, content string) ([]events.ValidationEvent, error) {
	return f.Parse(content)
}
func (f fakeParser) RequiresContext() bool                     { return false }
func (f fakeParser) FormatName() string                        { return f.name }
func (f fakeParser) Name() string                               { return f.name }
func (f fakeParser) Category() string                           { return "test" }
func (f fakeParser) Priority() int                              { return f.priority }
func (f fakeParser) CommandPatterns() []parser.CommandPattern   { return f.patterns }

func TestRegisterSortsByPriorityDescending(t *testing.T) {
	r := New()
	low := fakeParser{name: "low", priority: 10, canParse: func(string) bool { return true }}
	high := fakeParser{name: "high", priority: 100, canParse: func(string) bool { return true }}
	mid := fakeParser{name: "mid", priority: 50, canParse: func(string) bool { return true }}

	r.Register(low)
	r.Register(high)
	r.Register(mid)

	got := r.Parsers()
	want := []string{"high", "mid", "low"}
	for i, p := range got {
		if p.FormatName() != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, p.FormatName(), want[i])
		}
	}
}

func TestFindParserReturnsHighestPriorityMatch(t *testing.T) {
	r := New()
	r.Register(fakeParser{name: "generic", priority: 10, canParse: func(string) bool { return true }})
	r.Register(fakeParser{name: "specific", priority: 150, canParse: func(c string) bool { return c == "json" }})

	if got := r.FindParser("json"); got.FormatName() != "specific" {
		t.Errorf("expected specific parser to win, got %s", got.FormatName())
	}
	if got := r.FindParser("text"); got.FormatName() != "generic" {
		t.Errorf("expected generic fallback, got %s", got.FormatName())
	}
}

func TestFindParserByCommand(t *testing.T) {
	r := New()
	r.Register(fakeParser{
		name: "eslint", priority: 85,
		canParse: func(string) bool { return false },
		patterns: []parser.CommandPattern{parser.Like("eslint%--format=json%")},
	})
	r.Register(fakeParser{
		name: "ruff", priority: 85,
		canParse: func(string) bool { return false },
		patterns: []parser.CommandPattern{parser.Like("ruff check%")},
	})

	if got := r.FindParserByCommand("eslint --format=json src/"); got == nil || got.FormatName() != "eslint" {
		t.Errorf("expected eslint parser, got %v", got)
	}
	if got := r.FindParserByCommand("make test"); got != nil {
		t.Errorf("expected no match, got %v", got)
	}
}

func TestGetParserExactName(t *testing.T) {
	r := New()
	r.Register(fakeParser{name: "eslint", priority: 85, canParse: func(string) bool { return false }})
	if r.GetParser("eslint") == nil {
		t.Error("expected exact-name lookup to succeed")
	}
	if r.GetParser("nope") != nil {
		t.Error("expected exact-name lookup for unknown format to fail")
	}
}

func TestParserCount(t *testing.T) {
	r := New()
	if r.ParserCount() != 0 {
		t.Fatal("expected empty registry")
	}
	r.Register(fakeParser{name: "a", priority: 1, canParse: func(string) bool { return false }})
	r.Register(fakeParser{name: "b", priority: 1, canParse: func(string) bool { return false }})
	if r.ParserCount() != 2 {
		t.Errorf("expected 2 parsers, got %d", r.ParserCount())
	}
}
