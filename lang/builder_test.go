package lang

import "testing"

func foldLines(t *testing.T, text string) []FoldedLine {
	t.Helper()

	var raw []RawLine
	line := 0

	for _, s := range splitLines(text) {
		line++
		raw = append(raw, RawLine{File: "test", Number: line, Text: s})
	}

	folded, diags := FoldContinuations(raw)
	if diags.HasErrors() {
		t.Fatalf("unexpected fold diagnostics: %v", diags)
	}

	return folded
}

func TestBuildScopes_GlobalScopeAlwaysExists(t *testing.T) {
	glut := NewGLUT()
	diags := BuildScopes(nil, glut)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if _, ok := glut.Get(""); !ok {
		t.Fatal("expected implicit global scope to exist")
	}
}

func TestBuildScopes_EmptyHeaderAttachesToGlobalOnce(t *testing.T) {
	src := "[] :: internal, setenv\noutput = out.ini\n"
	glut := NewGLUT()
	diags := BuildScopes(foldLines(t, src), glut)

	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	global, ok := glut.Get("")
	if !ok {
		t.Fatal("expected global scope")
	}

	if len(global.Closures) != 2 {
		t.Fatalf("expected 2 closures on global scope, got %d", len(global.Closures))
	}

	if global.LLUT.Len() != 1 {
		t.Fatalf("expected 1 item on global scope, got %d", global.LLUT.Len())
	}
}

func TestBuildScopes_DuplicateGlobalHeaderFailsE01(t *testing.T) {
	src := "[] :: internal\n[] :: setenv\n"
	glut := NewGLUT()
	diags := BuildScopes(foldLines(t, src), glut)

	if len(diags) != 1 || diags[0].Code != E01 {
		t.Fatalf("expected a single E01 diagnostic, got %v", diags)
	}
}

func TestBuildScopes_DuplicateScopeNameFailsE01(t *testing.T) {
	src := "[Weapons]\nx = 1\n[Weapons]\ny = 2\n"
	glut := NewGLUT()
	diags := BuildScopes(foldLines(t, src), glut)

	if len(diags) != 1 || diags[0].Code != E01 {
		t.Fatalf("expected a single E01 diagnostic, got %v", diags)
	}
}

func TestBuildScopes_DuplicateKeyFailsE02(t *testing.T) {
	src := "[Weapons]\nx = 1\nx = 2\n"
	glut := NewGLUT()
	diags := BuildScopes(foldLines(t, src), glut)

	if len(diags) != 1 || diags[0].Code != E02 {
		t.Fatalf("expected a single E02 diagnostic, got %v", diags)
	}
}

func TestBuildScopes_ItemsInferTypeAndEvalFlag(t *testing.T) {
	src := "[scope]\ncount = 42\nname = \"text\"\ntotal := 1 + 1\n"
	glut := NewGLUT()
	diags := BuildScopes(foldLines(t, src), glut)

	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	scope, _ := glut.Get("scope")

	count, _ := scope.LLUT.GetItem("count")
	if count.Value.Type != TypeInt {
		t.Errorf("expected count inferred as TypeInt, got %v", count.Value.Type)
	}

	total, _ := scope.LLUT.GetItem("total")
	if !total.Eval {
		t.Error("expected total to carry the eval flag")
	}
}
