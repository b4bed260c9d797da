package lang

import "testing"

func TestFoldContinuations_JoinsIndentedLines(t *testing.T) {
	lines := []RawLine{
		{File: "f", Number: 1, Text: "key ="},
		{File: "f", Number: 2, Text: "  continued value"},
	}

	out, diags := FoldContinuations(lines)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(out) != 1 {
		t.Fatalf("expected 1 folded line, got %d", len(out))
	}

	if out[0].Text != "key = continued value" {
		t.Errorf("expected %q, got %q", "key = continued value", out[0].Text)
	}
}

func TestFoldContinuations_PreservesTopLevelLines(t *testing.T) {
	lines := []RawLine{
		{File: "f", Number: 1, Text: "[scope]"},
		{File: "f", Number: 2, Text: "key = value"},
	}

	out, diags := FoldContinuations(lines)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 folded lines, got %d", len(out))
	}
}

func TestFoldContinuations_NoAnchorFailsE00(t *testing.T) {
	lines := []RawLine{
		{File: "f", Number: 1, Text: "  indented with nothing before it"},
	}

	_, diags := FoldContinuations(lines)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}

	if diags[0].Code != E00 {
		t.Errorf("expected E00, got %v", diags[0].Code)
	}
}

func TestFoldContinuations_IndentNotGreaterThanAnchorFailsE00(t *testing.T) {
	lines := []RawLine{
		{File: "f", Number: 1, Text: "  key = value"},
		{File: "f", Number: 2, Text: "  not deeper than the anchor"},
	}

	// Only an unindented line sets the anchor. Neither line here is
	// unindented, so no anchor is ever set and each indented line fails E00
	// on its own.
	_, diags := FoldContinuations(lines)
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}

	for _, d := range diags {
		if d.Code != E00 {
			t.Errorf("expected only E00 diagnostics, got %v", d.Code)
		}
	}
}

func TestFoldContinuations_BlankLinesPreserved(t *testing.T) {
	lines := []RawLine{
		{File: "f", Number: 1, Text: "key = value"},
		{File: "f", Number: 2, Text: ""},
		{File: "f", Number: 3, Text: "other = thing"},
	}

	out, diags := FoldContinuations(lines)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 folded lines, got %d", len(out))
	}

	if out[1].Text != "" {
		t.Errorf("expected blank line preserved, got %q", out[1].Text)
	}
}
