package lang

import "io"

// Options configures a [Compile] call.
type Options struct {
	Evaluator Evaluator
}

// Option mutates [Options].
type Option func(*Options)

// WithEvaluator supplies the arithmetic evaluator the `eval` closure uses.
// If none is supplied, a `:=` item in a scope carrying the eval closure fails
// compilation with E05; `:=` items in other scopes are kept as literal text.
func WithEvaluator(ev Evaluator) Option {
	return func(o *Options) { o.Evaluator = ev }
}

// Stats reports the scale of a compile run.
type Stats struct {
	Scopes      int
	Items       int
	ClosuresRun int
	Errors      int
	Warnings    int
}

// Result holds everything a completed compile produced, whether or not it
// succeeded: the GLUT, the environment record, the accumulated diagnostics,
// and stats. WriteTo emits canonical INI only if the compile succeeded.
type Result struct {
	GLUT        *GLUT
	Environment *Environment
	Diagnostics Diagnostics
	Stats       Stats
}

// WriteTo serializes the compiled scopes to w in canonical INI form.
func (r *Result) WriteTo(w io.Writer) error {
	if r.Diagnostics.HasErrors() {
		return &Error{Diagnostics: r.Diagnostics}
	}

	return Emit(w, r.GLUT, r.Environment)
}

// Compile runs the full pipeline against path (or "-" for standard input):
// read, lex/fold, build scopes, run closures, resolve references, check
// types. It returns a non-nil *[Error] wrapping the diagnostics whenever any
// error-severity diagnostic was produced; warnings do not fail the call.
func Compile(path string, opts ...Option) (*Result, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	rawLines, diags, err := LoadSource(path)
	if err != nil {
		return nil, err
	}

	if diags.HasErrors() {
		return &Result{Diagnostics: diags}, &Error{Diagnostics: diags}
	}

	folded, foldDiags := FoldContinuations(rawLines)
	diags = append(diags, foldDiags...)

	glut := NewGLUT()
	env := &Environment{}

	diags = append(diags, BuildScopes(folded, glut)...)
	if diags.HasErrors() {
		return &Result{GLUT: glut, Environment: env, Diagnostics: diags}, &Error{Diagnostics: diags}
	}

	closureDiags, closuresRun := RunClosures(glut, env, options.Evaluator)
	diags = append(diags, closureDiags...)

	if diags.HasErrors() {
		return &Result{
			GLUT: glut, Environment: env, Diagnostics: diags,
			Stats: Stats{ClosuresRun: closuresRun},
		}, &Error{Diagnostics: diags}
	}

	diags = append(diags, ResolveReferences(glut)...)
	diags = append(diags, CheckTypes(glut)...)

	stats := computeStats(glut, closuresRun, diags)

	result := &Result{GLUT: glut, Environment: env, Diagnostics: diags, Stats: stats}

	if diags.HasErrors() {
		return result, &Error{Diagnostics: diags}
	}

	return result, nil
}

func computeStats(glut *GLUT, closuresRun int, diags Diagnostics) Stats {
	stats := Stats{ClosuresRun: closuresRun}

	for _, name := range glut.Names() {
		scope, _ := glut.Get(name)
		stats.Scopes++
		stats.Items += scope.LLUT.Len()
	}

	stats.Errors = len(diags.Errors())
	stats.Warnings = len(diags.Warnings())

	return stats
}
