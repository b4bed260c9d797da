package lang

import (
	"log/slog"
	"strings"
)

// Error is returned by [Compile] when compilation fails. It carries the
// full diagnostics list, since diagnostics are data rather than exceptions
// throughout this package.
type Error struct {
	Diagnostics Diagnostics
}

// Error implements the error interface, returning the messages of all
// error-severity diagnostics joined by "; ", or a generic message if no
// diagnostics were recorded.
func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return "compilation failed"
	}

	var sb strings.Builder

	for i, d := range e.Diagnostics.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}

		sb.WriteString(d.Message)
	}

	return sb.String()
}

// LogValue implements [slog.LogValuer], grouping diagnostics by code so a
// caller can log a failed compile in one structured record.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Diagnostics))

	for _, d := range e.Diagnostics {
		attrs = append(attrs, slog.String(string(d.Code), d.Message))
	}

	return slog.GroupValue(attrs...)
}
