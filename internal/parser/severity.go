package parser

import (
	"regexp"
	"strings"

	"github.com/logvalidate/core/internal/events"
)

// levelTable is the single shared table every leaf and workflow parser
// consults to turn a freeform level/status word into a canonical
// (EventStatus, severity string) pair. Centralizing this avoids the
// near-identical severity maps duplicated across leaves that the
// original source repeated per file.
var (
	criticalLevel = regexp.MustCompile(`(?i)\b(critical|fatal|panic|emerg(?:ency)?|alert)\b`)
	errorLevel    = regexp.MustCompile(`(?i)\b(error|err|failed|failure)\b`)
	warnLevel     = regexp.MustCompile(`(?i)\b(warn(?:ing)?)\b`)
	passLevel     = regexp.MustCompile(`(?i)\b(pass(?:ed)?|ok|success(?:ful)?)\b`)
	skipLevel     = regexp.MustCompile(`(?i)\b(skip(?:ped)?|ignored)\b`)
)

// MapLevelToSeverity classifies a raw level/status word (or a whole
// message containing one) into the canonical status+severity pairing
// described in spec §4.4's "severity mapping conventions". The mapping
// honors the invariant from spec §8 property 5: Warning always carries
// severity "warning", never "info" — a bug the original source had in
// some leaves, fixed here for every caller uniformly.
func MapLevelToSeverity(raw string) (events.EventStatus, string) {
	switch {
	case criticalLevel.MatchString(raw):
		return events.StatusError, events.SeverityCritical.String()
	case errorLevel.MatchString(raw):
		return events.StatusError, events.SeverityError.String()
	case warnLevel.MatchString(raw):
		return events.StatusWarning, events.SeverityWarning.String()
	case passLevel.MatchString(raw):
		return events.StatusPass, events.SeverityInfo.String()
	case skipLevel.MatchString(raw):
		return events.StatusSkip, events.SeverityInfo.String()
	default:
		return events.StatusInfo, events.SeverityInfo.String()
	}
}

// ansiPattern strips terminal escape sequences so regex-over-line parsers
// can match against colorized CI output the same way they would against
// plain text.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape sequences from a line.
func StripANSI(line string) string {
	if !strings.Contains(line, "\x1b") {
		return line
	}
	return ansiPattern.ReplaceAllString(line, "")
}

// timestampPatterns recognize common timestamp prefixes without
// normalizing their layout; spec requires the source format be preserved
// verbatim, so this only extracts the substring, it never reformats it.
var timestampPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`),
	regexp.MustCompile(`\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}`),
	regexp.MustCompile(`[A-Z][a-z]{2} \d{1,2} \d{2}:\d{2}:\d{2}`), // syslog: "Jan 2 15:04:05"
}

// ExtractTimestamp returns the first recognizable timestamp substring in
// line, or "" if none of the known formats match.
func ExtractTimestamp(line string) string {
	for _, p := range timestampPatterns {
		if m := p.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
