package lang

import "testing"

// stubEvaluator ignores the expression and returns its configured result and
// error; good enough to exercise closureEval's dispatch without pulling in a
// real expression engine.
type stubEvaluator struct {
	result Value
	err    error
}

func (s stubEvaluator) Eval(string) (Value, error) {
	return s.result, s.err
}

func buildAndRun(t *testing.T, src string, ev Evaluator) (*GLUT, *Environment, Diagnostics) {
	t.Helper()

	glut := NewGLUT()
	env := &Environment{}

	diags := BuildScopes(foldLines(t, src), glut)
	if diags.HasErrors() {
		t.Fatalf("unexpected build diagnostics: %v", diags)
	}

	closureDiags, _ := RunClosures(glut, env, ev)
	diags = append(diags, closureDiags...)

	return glut, env, diags
}

func TestClosureInternal_MarksScopeInternal(t *testing.T) {
	glut, _, diags := buildAndRun(t, "[hidden] :: internal\nx = 1\n", nil)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	scope, _ := glut.Get("hidden")
	if !scope.Flags.Internal {
		t.Error("expected scope to be marked internal")
	}
}

func TestClosureSetenv_PopulatesEnvironmentWithoutMarkingInternal(t *testing.T) {
	glut, env, diags := buildAndRun(t, "[] :: setenv\nsorted = True\noutput = out.ini\n", nil)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if !env.Sorted {
		t.Error("expected env.Sorted to be true")
	}

	if env.Output != "out.ini" {
		t.Errorf("expected env.Output %q, got %q", "out.ini", env.Output)
	}

	global, _ := glut.Get("")
	if global.Flags.Internal {
		t.Error("expected setenv alone to leave the global scope non-internal")
	}
}

func TestClosureInclude_OutsideGlobalFailsE09(t *testing.T) {
	_, _, diags := buildAndRun(t, "[scope] :: include :file :other.sini\nkey = 1\n", nil)

	found := false

	for _, d := range diags {
		if d.Code == E09 {
			found = true
		}
	}

	if !found {
		t.Error("expected E09 for include outside global scope")
	}
}

func TestClosureAbstractInline_Coverage(t *testing.T) {
	// Grounded on the Eirlithrad/Melltith seed scenario: an abstract scope
	// declares two required keys, and each inlining scope supplies both.
	src := `[Weapons] :: abstract :damage :range
[Eirlithrad] :: inline :Weapons
damage = 275
range = 18

[Melltith] :: inline :Weapons
damage = 355
range = 26
`
	glut, _, diags := buildAndRun(t, src, nil)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	weapons, _ := glut.Get("Weapons")

	eirlithrad, ok := weapons.LLUT.Get("Eirlithrad")
	if !ok {
		t.Fatal("expected Weapons to carry an Eirlithrad item")
	}

	if eirlithrad.Text != "275 18" {
		t.Errorf("expected %q, got %q", "275 18", eirlithrad.Text)
	}

	melltith, ok := weapons.LLUT.Get("Melltith")
	if !ok {
		t.Fatal("expected Weapons to carry a Melltith item")
	}

	if melltith.Text != "355 26" {
		t.Errorf("expected %q, got %q", "355 26", melltith.Text)
	}

	scope, _ := glut.Get("Eirlithrad")
	if !scope.Flags.Internal {
		t.Error("expected inlining scope to be marked internal")
	}
}

func TestClosureInline_MissingAbstractKeyFailsE06(t *testing.T) {
	src := `[Weapons] :: abstract :damage :range
[Eirlithrad] :: inline :Weapons
damage = 275
`
	_, _, diags := buildAndRun(t, src, nil)

	found := false

	for _, d := range diags {
		if d.Code == E06 {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected E06 for missing abstract key, got %v", diags)
	}
}

func TestClosureAs_MissingAbstractKeyFailsE06(t *testing.T) {
	src := `[Weapons] :: abstract :damage :range
[Eirlithrad] :: as :Weapons
damage = 275
`
	_, _, diags := buildAndRun(t, src, nil)

	found := false

	for _, d := range diags {
		if d.Code == E06 {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected E06 for missing abstract key via 'as', got %v", diags)
	}
}

func TestClosureEval_NoEvaluatorFailsE05(t *testing.T) {
	src := "[scope] :: eval\ntotal := 1 + 1\n"
	_, _, diags := buildAndRun(t, src, nil)

	found := false

	for _, d := range diags {
		if d.Code == E05 {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected E05 when no evaluator is configured, got %v", diags)
	}
}

func TestClosureEval_DelegatesOnlyEvalMarkedItems(t *testing.T) {
	src := "[scope] :: eval\ntotal := 2**8 - 1\nliteral = untouched\n"
	ev := stubEvaluator{result: Value{Text: "255", Type: TypeInt}}

	glut, _, diags := buildAndRun(t, src, ev)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	scope, _ := glut.Get("scope")

	total, _ := scope.LLUT.Get("total")
	if total.Text != "255" {
		t.Errorf("expected total %q, got %q", "255", total.Text)
	}

	literal, _ := scope.LLUT.Get("literal")
	if literal.Text != "untouched" {
		t.Errorf("expected literal value untouched, got %q", literal.Text)
	}
}

func TestRunClosures_UnknownClosureFailsE04(t *testing.T) {
	src := "[scope] :: bogus\nx = 1\n"
	_, _, diags := buildAndRun(t, src, nil)

	if len(diags) != 1 || diags[0].Code != E04 {
		t.Fatalf("expected a single E04 diagnostic, got %v", diags)
	}
}
