// Package enrich implements the post-parse severity filter (spec.md
// §4.7) and the parse-call metrics surface. Metrics grounded on
// mdzesseis-log_capturer_go/internal/metrics's promauto CounterVec /
// HistogramVec style; the filter itself is plain slice manipulation,
// there being no teacher precedent for a retention predicate to imitate.
package enrich

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/logvalidate/core/internal/events"
)

var (
	eventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_events_emitted_total",
			Help: "Events retained after the severity filter, by tool_name",
		},
		[]string{"tool_name"},
	)

	eventsFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_events_filtered_total",
			Help: "Events dropped by the severity filter, by tool_name",
		},
		[]string{"tool_name"},
	)

	parseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "validation_parse_duration_seconds",
			Help:    "Wall-clock time spent in a single parse call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format_name"},
	)
)

// ObserveParseDuration records how long a single dispatch-level parse
// call took, labeled by the format that handled it.
func ObserveParseDuration(formatName string, seconds float64) {
	parseDuration.WithLabelValues(formatName).Observe(seconds)
}

// FilterAndRenumber retains events whose severity clears threshold,
// preserving relative order, and renumbers EventID to close the gaps
// left by dropped events. Workflow delegation enrichment happens during
// parsing (internal/workflow), not here — this is purely the retention
// predicate plus metrics spec.md §4.7 describes.
func FilterAndRenumber(evs []events.ValidationEvent, threshold events.SeverityLevel) []events.ValidationEvent {
	out := make([]events.ValidationEvent, 0, len(evs))
	var id int64 = 1
	for _, ev := range evs {
		if !events.Passes(ev.Severity, threshold) {
			eventsFiltered.WithLabelValues(ev.ToolName).Inc()
			continue
		}
		eventsEmitted.WithLabelValues(ev.ToolName).Inc()
		ev.EventID = id
		id++
		out = append(out, ev)
	}
	return out
}
