package lang

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/superini/pkg"
)

// RawLine is one physical line read from a source file, before continuation
// folding or classification.
type RawLine struct {
	File   string
	Number int
	Text   string
}

// LoadSource reads path (or standard input if path is "-") into an ordered
// sequence of [RawLine]s, recursively splicing in any files named by an
// `include` closure on the global scope header, depth-first, in source
// order. Included files are tracked by resolved path so a cycle terminates
// instead of expanding forever.
func LoadSource(path string) ([]RawLine, Diagnostics, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, pkg.MakeError(pkg.ErrReadInput, err)
		}

		return splitAndSplice("<stdin>", string(data), map[string]bool{}, nil)
	}

	return loadFile(path, map[string]bool{}, nil)
}

func loadFile(path string, seen map[string]bool, stack []string) ([]RawLine, Diagnostics, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	for _, s := range stack {
		if s == abs {
			// Cycle: elide silently, the visited-path guard already
			// prevents infinite expansion.
			return nil, nil, nil
		}
	}

	if seen[abs] {
		return nil, nil, nil
	}

	seen[abs] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Diagnostics{{
			Severity: SeverityError,
			Code:     E08,
			Message:  fmt.Sprintf("missing input file %q", path),
			Trace:    Trace{File: path},
		}}, nil
	}

	return splitAndSplice(path, string(data), seen, append(stack, abs))
}

func splitAndSplice(
	file, content string,
	seen map[string]bool,
	stack []string,
) ([]RawLine, Diagnostics, error) {
	var (
		out   []RawLine
		diags Diagnostics
	)

	dir := filepath.Dir(file)

	for i, raw := range splitLines(content) {
		lineNo := i + 1
		out = append(out, RawLine{File: file, Number: lineNo, Text: raw})

		name, closures, ok := parseHeader(strings.TrimSpace(raw))
		if !ok || name != "" {
			continue
		}

		for _, call := range closures {
			if call.Name != "include" {
				continue
			}

			for _, arg := range call.Args {
				incPath := arg
				if !filepath.IsAbs(incPath) {
					incPath = filepath.Join(dir, incPath)
				}

				subLines, subDiags, err := loadFile(incPath, seen, stack)
				if err != nil {
					return nil, nil, err
				}

				diags = append(diags, subDiags...)
				out = append(out, subLines...)
			}
		}
	}

	return out, diags, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
