// This file defines the per-call Outcome reported by reader queries.
package meshfile

import "fmt"

// Severity grades a query outcome.
type Severity uint8

const (
	// SeverityOK marks a successful query.
	SeverityOK Severity = iota

	// SeverityWarning marks a query that produced an empty result the caller
	// may reasonably continue past.
	SeverityWarning

	// SeverityFatal marks a query aborted on a missing required dimension or
	// variable.
	SeverityFatal
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Outcome is the per-call result of a reader query. Err wraps one of the
// package sentinels so callers can branch with errors.Is; Message carries
// the human-readable description. On success both are empty.
type Outcome struct {
	Severity Severity
	Err      error
	Message  string
}

// OK reports a successful query.
func (o Outcome) OK() bool { return o.Severity == SeverityOK }

// Warning reports an empty-but-continuable query.
func (o Outcome) Warning() bool { return o.Severity == SeverityWarning }

// Fatal reports an aborted query.
func (o Outcome) Fatal() bool { return o.Severity == SeverityFatal }

// okOutcome is the shared success value.
func okOutcome() Outcome { return Outcome{Severity: SeverityOK} }

// warning builds a warning Outcome wrapping sentinel.
func warning(sentinel error, format string, args ...any) Outcome {
	msg := fmt.Sprintf(format, args...)

	return Outcome{
		Severity: SeverityWarning,
		Err:      fmt.Errorf("%s: %w", msg, sentinel),
		Message:  msg,
	}
}

// fatal builds a fatal Outcome wrapping sentinel.
func fatal(sentinel error, format string, args ...any) Outcome {
	msg := fmt.Sprintf(format, args...)

	return Outcome{
		Severity: SeverityFatal,
		Err:      fmt.Errorf("%s: %w", msg, sentinel),
		Message:  msg,
	}
}
