package lang

import "strings"

// FoldedLine is one logical line after continuation folding: its file, the
// line number of its first physical line, and its folded text.
type FoldedLine struct {
	File string
	Line int
	Text string
}

// FoldContinuations implements the continuation-folding rule: any
// line whose first non-space column is strictly greater than the indent
// column of the last non-continuation line is appended to that line with a
// single separating space. An indented line with no valid anchor fails E00.
func FoldContinuations(lines []RawLine) ([]FoldedLine, Diagnostics) {
	var (
		out    []FoldedLine
		diags  Diagnostics
		anchor = -1
	)

	for _, ln := range lines {
		text := strings.TrimRight(ln.Text, "\r")

		if strings.TrimSpace(text) == "" {
			out = append(out, FoldedLine{File: ln.File, Line: ln.Number, Text: ""})

			continue
		}

		indent := len(text) - len(strings.TrimLeft(text, " \t"))

		if indent == 0 {
			out = append(out, FoldedLine{File: ln.File, Line: ln.Number, Text: text})
			anchor = 0

			continue
		}

		if anchor < 0 || indent <= anchor || len(out) == 0 {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     E00,
				Message:  "undefined sequence: continuation line has no valid anchor",
				Trace:    Trace{File: ln.File, Line: ln.Number},
			})

			continue
		}

		last := &out[len(out)-1]
		last.Text = last.Text + " " + strings.TrimSpace(text)
	}

	return out, diags
}
