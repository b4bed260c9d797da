package lang

import (
	"fmt"
	"regexp"
)

var refRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)::([A-Za-z_][A-Za-z0-9_]*)`)

// substituteRefs replaces every `SCOPE::KEY` substring of text with the
// target's current literal value. An absent scope produces W00; an absent
// key within an existing scope produces W01. Both leave the reference text
// unchanged.
func substituteRefs(text string, glut *GLUT, trace Trace) (string, Diagnostics) {
	var diags Diagnostics

	result := refRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := refRe.FindStringSubmatch(m)
		scopeName, key := parts[1], parts[2]

		scope, ok := glut.Get(scopeName)
		if !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning, Code: W00,
				Message: fmt.Sprintf("unresolved scope reference %q", scopeName),
				Trace:   trace,
			})

			return m
		}

		v, ok := scope.LLUT.Get(key)
		if !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning, Code: W01,
				Message: fmt.Sprintf("unresolved key reference %q in scope %q", key, scopeName),
				Trace:   trace,
			})

			return m
		}

		return v.Text
	})

	return result, diags
}

// ResolveReferences walks every surviving item's value text and substitutes
// `scope::key` references with the target's current text. It runs
// once; closures have already finalized values, so re-resolution is not
// required.
func ResolveReferences(glut *GLUT) Diagnostics {
	var diags Diagnostics

	for _, name := range glut.Names() {
		scope, _ := glut.Get(name)

		for _, key := range scope.LLUT.Keys() {
			item, _ := scope.LLUT.GetItem(key)
			if !refRe.MatchString(item.Value.Text) {
				continue
			}

			resolved, subDiags := substituteRefs(item.Value.Text, glut, item.Value.Trace)
			diags = append(diags, subDiags...)

			item.Value.Text = resolved
			scope.LLUT.Put(key, item.Value)
		}
	}

	return diags
}
