// Package dispatch implements format detection & dispatch (spec.md
// §4.6): explicit-format routing, content-based auto-detection, the
// GitHub Actions ZIP short-circuit, and empty-input handling. It also
// resolves a `source` glob spanning multiple files — a supplement to
// spec.md's single-source contract, grounded on the original DuckDB
// extension's multi-file table function
// (original_source: src/include/read_workflow_logs_function.hpp) and
// implemented with handleui-detent's own doublestar dependency
// (packages/core/heal/tools/glob.go).
package dispatch

import (
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/logvalidate/core/internal/apperrors"
	"github.com/logvalidate/core/internal/applog"
	"github.com/logvalidate/core/internal/bind"
	"github.com/logvalidate/core/internal/enrich"
	"github.com/logvalidate/core/internal/events"
	"github.com/logvalidate/core/internal/registry"
	"github.com/logvalidate/core/internal/workflow"
)

// Dispatcher holds the two read-only registries bootstrap populates.
// Every Parse/Read call is pure given those registries, per spec.md §5's
// concurrency model.
type Dispatcher struct {
	Tools     *registry.Registry
	Workflows *workflow.Registry
	Logger    *logrus.Logger
}

// New wraps an already-populated pair of registries with a default
// logger. Assign Logger directly to supply a caller-owned instance.
func New(tools *registry.Registry, wf *workflow.Registry) *Dispatcher {
	return &Dispatcher{Tools: tools, Workflows: wf, Logger: applog.New()}
}

// Parse dispatches literal content to the right parser. format is
// either empty/"auto" (content-based detection), a workflow format
// token, or a tool FormatName. An unrecognized explicit format token is
// a binder error, raised immediately per spec.md §7.
func (d *Dispatcher) Parse(content string, format string) ([]events.ValidationEvent, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	start := time.Now()

	switch {
	case format == "" || format == "auto":
		return d.parseAuto(content, start)
	case events.IsWorkflowFormat(format):
		wp := d.Workflows.GetParser(format)
		if wp == nil {
			return nil, apperrors.UnknownFormat(format, d.legalFormats())
		}
		entry := applog.WithParser(d.Logger, "dispatch", format)
		wevs, err := wp.ParseWorkflowLog(content)
		enrich.ObserveParseDuration(format, time.Since(start).Seconds())
		applog.ParseResult(entry, len(wevs), err)
		if err != nil {
			return nil, err
		}
		return workflow.Flatten(wevs), nil
	default:
		tp := d.Tools.GetParser(format)
		if tp == nil {
			return nil, apperrors.UnknownFormat(format, d.legalFormats())
		}
		entry := applog.WithParser(d.Logger, "dispatch", format)
		evs, err := tp.Parse(content)
		enrich.ObserveParseDuration(format, time.Since(start).Seconds())
		applog.ParseResult(entry, len(evs), err)
		return evs, err
	}
}

// parseAuto probes workflow discriminators first (a transcript's
// structural markers are a stronger signal than any single line's
// shape), falling back to the flat tool registry.
func (d *Dispatcher) parseAuto(content string, start time.Time) ([]events.ValidationEvent, error) {
	if wp := d.Workflows.FindParser(content); wp != nil {
		entry := applog.WithParser(d.Logger, "dispatch", wp.FormatName())
		wevs, err := wp.ParseWorkflowLog(content)
		enrich.ObserveParseDuration(wp.FormatName(), time.Since(start).Seconds())
		applog.ParseResult(entry, len(wevs), err)
		if err != nil {
			return nil, err
		}
		return workflow.Flatten(wevs), nil
	}
	if tp := d.Tools.FindParser(content); tp != nil {
		entry := applog.WithParser(d.Logger, "dispatch", tp.FormatName())
		evs, err := tp.Parse(content)
		enrich.ObserveParseDuration(tp.FormatName(), time.Since(start).Seconds())
		applog.ParseResult(entry, len(evs), err)
		return evs, err
	}
	return nil, nil
}

// Read resolves source (a file path, a glob pattern, a literal-content
// fallback, or a ".zip" path) and parses the result. A glob matching
// more than one file parses each independently and concatenates events
// in match order, preserving spec.md's single-source semantics per
// file.
func (d *Dispatcher) Read(source string, format string) ([]events.ValidationEvent, error) {
	if source == "" {
		return nil, apperrors.MissingSource()
	}

	if format == "github_actions_zip" || strings.HasSuffix(strings.ToLower(source), ".zip") {
		return d.readZip(source)
	}

	if matches, ok := globMatches(source); ok {
		var out []events.ValidationEvent
		for _, path := range matches {
			evs, err := d.Read(path, format)
			if err != nil {
				return nil, err
			}
			out = append(out, evs...)
		}
		return out, nil
	}

	resolved, err := bind.ResolveSource(source)
	if err != nil {
		return nil, err
	}
	if resolved.IsZip {
		return d.readZip(resolved.ZipPath)
	}
	return d.Parse(resolved.Content, format)
}

func (d *Dispatcher) readZip(path string) ([]events.ValidationEvent, error) {
	wp := d.Workflows.GetParser("github_actions_zip")
	if wp == nil {
		return nil, apperrors.UnknownFormat("github_actions_zip", d.legalFormats())
	}
	zp, ok := wp.(*workflow.GithubActionsZipParser)
	if !ok {
		return nil, apperrors.UnknownFormat("github_actions_zip", d.legalFormats())
	}
	wevs, err := zp.ParseWorkflowLogFromZip(path)
	if err != nil {
		return nil, apperrors.IO(path, err)
	}
	return workflow.Flatten(wevs), nil
}

// globMatches reports whether source contains glob metacharacters and,
// if so, resolves it against the filesystem in sorted match order.
func globMatches(source string) ([]string, bool) {
	if !strings.ContainsAny(source, "*?[") {
		return nil, false
	}
	matches, err := doublestar.FilepathGlob(source)
	if err != nil || len(matches) == 0 {
		return nil, false
	}
	sort.Strings(matches)
	return matches, true
}

func (d *Dispatcher) legalFormats() []string {
	var out []string
	for _, p := range d.Tools.Parsers() {
		out = append(out, p.FormatName())
	}
	for _, p := range d.Workflows.Parsers() {
		out = append(out, p.FormatName())
	}
	sort.Strings(out)
	return out
}
