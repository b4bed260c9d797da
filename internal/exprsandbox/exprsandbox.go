// Package exprsandbox is the concrete arithmetic evaluator wired into the
// `eval` closure. It is kept separate from the lang package, which only
// depends on the narrow [lang.Evaluator] interface: no identifier lookup
// beyond what the caller has already resolved, no function calls, no I/O.
package exprsandbox

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/superini/lang"
)

// Sandbox implements [lang.Evaluator] using github.com/expr-lang/expr,
// restricted to a bare arithmetic environment: no variables, no functions,
// no field access. Callers are expected to substitute any `scope::key`
// references before calling Eval, since the sandbox has no notion of scopes.
type Sandbox struct{}

// New returns a ready-to-use arithmetic Sandbox.
func New() *Sandbox { return &Sandbox{} }

// env is deliberately empty: the only names an expression may reference are
// numeric literals and the arithmetic operators expr-lang/expr supports
// natively (+ - * / ** and parentheses).
type env struct{}

// Eval compiles and runs expr as an arithmetic expression, returning the
// stringified numeric result as a [lang.Value].
func (s *Sandbox) Eval(source string) (lang.Value, error) {
	program, err := expr.Compile(source, expr.Env(env{}), expr.DisableAllBuiltins())
	if err != nil {
		return lang.Value{}, fmt.Errorf("compile %q: %w", source, err)
	}

	out, err := vm.Run(program, env{})
	if err != nil {
		return lang.Value{}, fmt.Errorf("run %q: %w", source, err)
	}

	text, tag := formatResult(out)

	return lang.Value{Text: text, Type: tag}, nil
}

func formatResult(v any) (string, lang.TypeTag) {
	switch n := v.(type) {
	case int:
		return fmt.Sprintf("%d", n), lang.TypeInt
	case int64:
		return fmt.Sprintf("%d", n), lang.TypeInt
	case float64:
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n)), lang.TypeInt
		}

		return fmt.Sprintf("%g", n), lang.TypeFloat
	case bool:
		if n {
			return "True", lang.TypeBool
		}

		return "False", lang.TypeBool
	default:
		return fmt.Sprintf("%v", n), lang.TypeStr
	}
}
