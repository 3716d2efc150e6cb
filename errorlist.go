package ciiubl

import "fmt"

// Severity classifies a diagnostic entry.
type Severity int

// Diagnostic severities, ordered from least to most severe.
const (
	SeverityNotice Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is a single entry recorded during conversion.
type Diagnostic struct {
	Severity Severity
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", d.Severity, d.Message, d.Err)
	}
	return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
}

// Unwrap exposes the wrapped error, if any.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// ErrorList accumulates diagnostics across a conversion. Callers supply one
// per conversion call and inspect it afterwards: an absent result with only
// notices recorded means the document was rejected as unsupported rather
// than failing to parse.
//
// The zero value is ready to use. An ErrorList must not be shared between
// concurrent conversions.
type ErrorList struct {
	entries []Diagnostic
}

// AddError records an error-level diagnostic wrapping err.
func (el *ErrorList) AddError(msg string, err error) {
	el.entries = append(el.entries, Diagnostic{Severity: SeverityError, Message: msg, Err: err})
}

// Errorf records an error-level diagnostic.
func (el *ErrorList) Errorf(format string, args ...any) {
	el.entries = append(el.entries, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

// Noticef records a notice-level diagnostic.
func (el *ErrorList) Noticef(format string, args ...any) {
	el.entries = append(el.entries, Diagnostic{Severity: SeverityNotice, Message: fmt.Sprintf(format, args...)})
}

// Entries returns all recorded diagnostics in insertion order.
func (el *ErrorList) Entries() []Diagnostic {
	return el.entries
}

// Len returns the number of recorded diagnostics.
func (el *ErrorList) Len() int {
	return len(el.entries)
}

// HasErrors reports whether any error-level diagnostic has been recorded.
func (el *ErrorList) HasErrors() bool {
	for _, d := range el.entries {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasNotices reports whether any notice-level diagnostic has been recorded.
func (el *ErrorList) HasNotices() bool {
	for _, d := range el.entries {
		if d.Severity == SeverityNotice {
			return true
		}
	}
	return false
}
