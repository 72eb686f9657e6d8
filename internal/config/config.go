// Package config loads the bind-time options record (spec.md §6's
// `opts`) from YAML using the teacher's own YAML library. Grounded on
// handleui-detent/packages/core/workflow.Parse's direct
// goccy/go-yaml.Unmarshal usage, with struct tags in the same style as
// workflow/types.go.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/logvalidate/core/internal/events"
)

// Options is the bind-time record a host supplies to Read/Parse: the
// severity retention threshold and whether a structural parse error
// should be raised or swallowed as a parse_error event.
type Options struct {
	SeverityThreshold string `yaml:"severity_threshold,omitempty"`
	IgnoreErrors      bool   `yaml:"ignore_errors,omitempty"`
}

// Default returns the zero-config defaults: retain everything
// (Debug threshold) and swallow structural errors as parse_error events.
func Default() Options {
	return Options{SeverityThreshold: events.SeverityDebug.String(), IgnoreErrors: true}
}

// Threshold resolves the configured severity string to a SeverityLevel,
// defaulting to Debug (retain everything) when unset.
func (o Options) Threshold() events.SeverityLevel {
	if o.SeverityThreshold == "" {
		return events.SeverityDebug
	}
	return events.SeverityLevelFromString(o.SeverityThreshold)
}

// Load reads an Options record from a YAML file at path, filling any
// field the file omits with Default()'s value.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return opts, nil
}
