package lang

import "fmt"

// Severity distinguishes diagnostics that abort compilation from those that
// allow it to continue.
type Severity int

const (
	// SeverityError aborts compilation; no output is produced.
	SeverityError Severity = iota
	// SeverityWarning is reported but compilation continues with a
	// best-effort value.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Code identifies a diagnostic. E00, E06, E07, E08, W00, and W01 are the
// required codes; the rest are internal invariant violations assigned
// fresh codes.
type Code string

const (
	// E00 marks an indented line with no valid continuation anchor.
	E00 Code = "E00"
	// E01 marks a scope header reusing an existing scope name.
	E01 Code = "E01"
	// E02 marks an item or symbol key already classified in its scope.
	E02 Code = "E02"
	// E03 marks a header or item line that could not be classified.
	E03 Code = "E03"
	// E04 marks a closure invocation naming an unregistered closure.
	E04 Code = "E04"
	// E05 marks an eval-assignment item with no evaluator configured, or
	// one that the evaluator rejected.
	E05 Code = "E05"
	// E06 marks a scope using `as`/`inline` whose parent scope does not
	// exist or that is missing a required abstract key.
	E06 Code = "E06"
	// E07 marks an item whose value does not fit its declared type.
	E07 Code = "E07"
	// E08 marks a missing or unreadable input file.
	E08 Code = "E08"
	// E09 marks an `include` closure invoked outside the global scope.
	E09 Code = "E09"

	// W00 marks a `scope::key` reference to a scope absent from the GLUT.
	W00 Code = "W00"
	// W01 marks a `scope::key` reference to a key absent from an existing
	// scope.
	W01 Code = "W01"
)

// Diagnostic is a single compiler message: a severity, a code, a
// human-readable message, and the trace of the value or scope it concerns.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Trace    Trace
}

// String renders the diagnostic in a two-line format:
//
//	error[Enn]: message
//	  --> FILE:LINE [SCOPE]
func (d Diagnostic) String() string {
	scope := d.Trace.Scope
	if scope == "" {
		scope = "__global__"
	}

	return fmt.Sprintf("%s[%s]: %s\n  --> %s:%d [%s]",
		d.Severity, d.Code, d.Message, d.Trace.File, d.Trace.Line, scope)
}

// Error implements the error interface so a Diagnostic can be used wherever
// an error is expected.
func (d Diagnostic) Error() string { return d.String() }

// Diagnostics is an ordered collection of [Diagnostic] values.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic in the collection is
// [SeverityError].
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Errors returns only the error-severity diagnostics.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics

	for _, d := range ds {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}

	return out
}

// Warnings returns only the warning-severity diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics

	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}

	return out
}
