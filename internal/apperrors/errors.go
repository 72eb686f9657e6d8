// Package apperrors defines the typed error taxonomy the pipeline raises
// at its boundary: binder errors, I/O errors, and structural parse
// errors. Grounded on handleui-detent's
// packages/core/errors/serialize.go + apps/cli/internal/errors/types.go
// shape (a typed struct with a Category/Severity pair and an Error()
// method), generalized to the three-kind taxonomy spec.md §7 names.
package apperrors

import (
	"fmt"

	"github.com/logvalidate/core/internal/events"
)

// Category is the coarse kind of boundary failure, mirroring spec.md
// §7's error table.
type Category int

const (
	CategoryBinder Category = iota
	CategoryIO
	CategoryParseStructural
)

func (c Category) String() string {
	switch c {
	case CategoryBinder:
		return "binder_error"
	case CategoryIO:
		return "io_error"
	case CategoryParseStructural:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Error is the single error type raised across the C6/C8 boundary. Every
// field is optional except Category and Message.
type Error struct {
	Category     Category
	Message      string
	Path         string   // source path or literal-content hint, when known
	LegalFormats []string // populated for an unknown-format binder error
	Cause        error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil && e.Path != "":
		return fmt.Sprintf("%s: %s (%s): %v", e.Category, e.Message, e.Path, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (%s)", e.Category, e.Message, e.Path)
	default:
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// UnknownFormat builds the binder error raised when a caller names a
// format token neither registry recognizes.
func UnknownFormat(token string, legal []string) *Error {
	return &Error{
		Category:     CategoryBinder,
		Message:      fmt.Sprintf("unknown format %q", token),
		LegalFormats: legal,
	}
}

// MissingSource builds the binder error raised when source is empty.
func MissingSource() *Error {
	return &Error{Category: CategoryBinder, Message: "source is required"}
}

// IO wraps a filesystem/archive failure as an I/O error with the path
// that failed attached for the caller.
func IO(path string, cause error) *Error {
	return &Error{Category: CategoryIO, Message: "read failed", Path: path, Cause: cause}
}

// EscalateStructural implements the one exception to "a structural parse
// error is swallowed as a parse_error event": when the caller named an
// explicit format (not auto-detected) and ignoreErrors is false, a
// parse_error event found among evs is raised as an error instead of
// returned to the caller silently.
func EscalateStructural(evs []events.ValidationEvent, formatExplicit, ignoreErrors bool) error {
	if !formatExplicit || ignoreErrors {
		return nil
	}
	for _, ev := range evs {
		if ev.ToolName == "parse_error" {
			return &Error{
				Category: CategoryParseStructural,
				Message:  ev.Message,
				Path:     ev.LogContent,
			}
		}
	}
	return nil
}
