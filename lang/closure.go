package lang

import (
	"fmt"
	"strings"
)

// closureFunc is the dispatch signature every registered closure implements:
// it receives the caller scope, its symbol arguments, the GLUT, the
// environment record, and the configured evaluator, and mutates the caller
// in place.
type closureFunc func(caller *Scope, args []string, glut *GLUT, env *Environment, ev Evaluator) Diagnostics

var closureTable = map[string]closureFunc{
	"internal": closureInternal,
	"setenv":   closureSetenv,
	"include":  closureInclude,
	"abstract": closureAbstract,
	"as":       closureAs,
	"inline":   closureInline,
	"eval":     closureEval,
}

// RunClosures invokes each scope's pending closures in GLUT order, and
// within a scope, in header left-to-right order. It returns the
// diagnostics produced and the number of closures actually dispatched.
func RunClosures(glut *GLUT, env *Environment, ev Evaluator) (Diagnostics, int) {
	var (
		diags Diagnostics
		count int
	)

	for _, name := range glut.Names() {
		scope, _ := glut.Get(name)

		for _, call := range scope.Closures {
			fn, ok := closureTable[call.Name]
			if !ok {
				diags = append(diags, Diagnostic{
					Severity: SeverityError, Code: E04,
					Message: fmt.Sprintf("unknown closure %q", call.Name),
					Trace:   scope.Trace,
				})

				continue
			}

			count++
			diags = append(diags, fn(scope, call.Args, glut, env, ev)...)
		}
	}

	return diags, count
}

func closureInternal(caller *Scope, _ []string, _ *GLUT, _ *Environment, _ Evaluator) Diagnostics {
	caller.Flags.Internal = true

	return nil
}

func closureSetenv(caller *Scope, _ []string, _ *GLUT, env *Environment, _ Evaluator) Diagnostics {
	for _, key := range caller.LLUT.Keys() {
		v, _ := caller.LLUT.Get(key)

		switch key {
		case "output":
			env.Output = v.Text
		case "sorted":
			env.Sorted = v.Text == "True" || strings.EqualFold(v.Text, "true")
		default:
			if env.Extra == nil {
				env.Extra = make(map[string]string)
			}

			env.Extra[key] = v.Text
		}
	}

	return nil
}

// closureInclude is a no-op at runtime: the source reader has already
// spliced included files into the token stream during the build phase.
// Only its placement is validated here.
func closureInclude(caller *Scope, _ []string, _ *GLUT, _ *Environment, _ Evaluator) Diagnostics {
	if caller.Name != "" {
		return Diagnostics{{
			Severity: SeverityError, Code: E09,
			Message: "include is only valid on the global scope",
			Trace:   caller.Trace,
		}}
	}

	return nil
}

func closureAbstract(caller *Scope, args []string, _ *GLUT, _ *Environment, _ Evaluator) Diagnostics {
	caller.Flags.Abstract = true
	caller.AbstractKeys = append([]string(nil), args...)

	return nil
}

func closureAs(caller *Scope, args []string, glut *GLUT, _ *Environment, _ Evaluator) Diagnostics {
	var diags Diagnostics

	for _, parentName := range args {
		parent, ok := glut.Get(parentName)
		if !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: E06,
				Message: fmt.Sprintf("as: parent scope %q not found", parentName),
				Trace:   caller.Trace,
			})

			continue
		}

		diags = append(diags, checkAbstractCoverage(caller, parent)...)
	}

	return diags
}

func closureInline(caller *Scope, args []string, glut *GLUT, _ *Environment, _ Evaluator) Diagnostics {
	var diags Diagnostics

	caller.Flags.Internal = true

	for _, parentName := range args {
		parent, ok := glut.Get(parentName)
		if !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: E06,
				Message: fmt.Sprintf("inline: parent scope %q not found", parentName),
				Trace:   caller.Trace,
			})

			continue
		}

		coverage := checkAbstractCoverage(caller, parent)
		diags = append(diags, coverage...)

		if len(coverage) > 0 {
			continue
		}

		parts := make([]string, 0, len(parent.AbstractKeys))

		for _, key := range parent.AbstractKeys {
			v, _ := caller.LLUT.Get(key)
			parts = append(parts, v.Text)
		}

		parent.LLUT.Put(caller.Name, Value{
			Text:  strings.Join(parts, " "),
			Type:  TypeStr,
			Trace: caller.Trace,
		})
	}

	return diags
}

func checkAbstractCoverage(caller, parent *Scope) Diagnostics {
	var diags Diagnostics

	for _, key := range parent.AbstractKeys {
		if _, ok := caller.LLUT.Get(key); !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: E06,
				Message: fmt.Sprintf("missing abstract key %q required by %q", key, parent.DisplayName()),
				Trace:   caller.Trace,
			})
		}
	}

	return diags
}

// closureEval evaluates every eval-assignment (`:=`) item in the caller
// scope. Plain `=` items in an eval scope are left untouched; only items
// marked by `:=` are sent through the evaluator.
func closureEval(caller *Scope, _ []string, glut *GLUT, _ *Environment, ev Evaluator) Diagnostics {
	var diags Diagnostics

	for _, key := range caller.LLUT.Keys() {
		item, _ := caller.LLUT.GetItem(key)
		if !item.Eval {
			continue
		}

		expr, subDiags := substituteRefs(item.Value.Text, glut, item.Value.Trace)
		diags = append(diags, subDiags...)

		if ev == nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: E05,
				Message: "eval closure requires a configured evaluator",
				Trace:   item.Value.Trace,
			})

			continue
		}

		result, err := ev.Eval(expr)
		if err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: E05,
				Message: fmt.Sprintf("eval failed: %v", err),
				Trace:   item.Value.Trace,
			})

			continue
		}

		result.Trace = item.Value.Trace
		caller.LLUT.Put(key, result)
	}

	return diags
}
