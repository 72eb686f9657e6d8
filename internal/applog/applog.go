// Package applog provides the process-wide structured logger every
// package in this module logs through. Grounded on
// mdzesseis-log_capturer_go/internal/dispatcher's logrus usage
// (constructor-injected *logrus.Logger, logrus.Fields on call sites).
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a *logrus.Logger configured with the JSON formatter this
// module uses everywhere: one process-wide logger, no package-level
// globals, so callers embedding this pipeline can supply their own
// instance instead.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// WithParser returns an entry pre-populated with the component/parser
// fields logged at the start and end of a parse call.
func WithParser(l *logrus.Logger, component, parserName string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"component": component,
		"parser":    parserName,
	})
}

// ParseResult logs the outcome of a single parse call with the
// event_count field spec.md's structured-logging ambient concern calls
// for.
func ParseResult(entry *logrus.Entry, eventCount int, err error) {
	fields := logrus.Fields{"event_count": eventCount}
	if err != nil {
		entry.WithFields(fields).WithError(err).Warn("parse completed with error")
		return
	}
	entry.WithFields(fields).Debug("parse completed")
}
