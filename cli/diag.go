package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ardnew/superini/lang"
)

// Terminal coloring of diagnostics is a front-end concern kept out of the
// lang package, which only renders diagnostics as plain text via
// [lang.Diagnostic.String].
var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderDiagnostic formats a diagnostic for the terminal, coloring the
// summary line by severity and dimming the trace line. It falls back to the
// plain [lang.Diagnostic.String] rendering when stderr is not a terminal.
func renderDiagnostic(d lang.Diagnostic) string {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return d.String()
	}

	scope := d.Trace.Scope
	if scope == "" {
		scope = "__global__"
	}

	summary := fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	if d.Severity == lang.SeverityWarning {
		summary = warnStyle.Render(summary)
	} else {
		summary = errorStyle.Render(summary)
	}

	trace := traceStyle.Render(
		fmt.Sprintf("  --> %s:%d [%s]", d.Trace.File, d.Trace.Line, scope),
	)

	return summary + "\n" + trace
}
