package lang

import "fmt"

// BuildScopes walks the classified token stream and constructs the GLUT.
// The implicit __global__ scope always exists before the first token is
// processed; a `[]` header attaches its closures to that same scope rather
// than creating a duplicate, as long as it is the first `[]` header seen.
func BuildScopes(lines []FoldedLine, glut *GLUT) Diagnostics {
	var diags Diagnostics

	global := &Scope{Name: "", LLUT: NewLLUT()}
	_ = glut.Add(global)

	current := global
	globalHeaderSeen := false

	for _, fl := range lines {
		tok := Classify(fl)
		trace := Trace{File: fl.File, Line: fl.Line, Scope: current.Name}

		switch tok.Kind {
		case TokBlank, TokComment:
			continue

		case TokError:
			diags = append(diags, Diagnostic{
				Severity: SeverityError, Code: tok.Code, Message: tok.Message, Trace: trace,
			})

		case TokHeader:
			if tok.Name == "" {
				if globalHeaderSeen {
					diags = append(diags, Diagnostic{
						Severity: SeverityError, Code: E01,
						Message: "duplicate scope \"\"",
						Trace:   Trace{File: fl.File, Line: fl.Line},
					})

					continue
				}

				globalHeaderSeen = true
				global.Closures = append(global.Closures, tok.Closures...)
				global.Trace = Trace{File: fl.File, Line: fl.Line}
				current = global

				continue
			}

			if _, exists := glut.Get(tok.Name); exists {
				diags = append(diags, Diagnostic{
					Severity: SeverityError, Code: E01,
					Message: fmt.Sprintf("duplicate scope %q", tok.Name),
					Trace:   Trace{File: fl.File, Line: fl.Line},
				})

				continue
			}

			scope := &Scope{
				Name:     tok.Name,
				LLUT:     NewLLUT(),
				Closures: tok.Closures,
				Trace:    Trace{File: fl.File, Line: fl.Line},
			}
			_ = glut.Add(scope)
			current = scope

		case TokItem:
			v := Value{Text: tok.RHS, Trace: trace}
			if tok.HasType {
				v.Type = tok.TypeTag
			} else {
				v.Type = InferType(tok.RHS)
			}

			item := Item{Key: tok.Key, Value: v, HasType: tok.HasType, Eval: tok.IsEval}
			if err := current.LLUT.SetUnique(tok.Key, item); err != nil {
				diags = append(diags, Diagnostic{
					Severity: SeverityError, Code: E02,
					Message: fmt.Sprintf("duplicate key %q in scope %q", tok.Key, current.DisplayName()),
					Trace:   trace,
				})
			}

		case TokSymbolDecl:
			v := Value{Text: "", Type: tok.TypeTag, Trace: trace}
			item := Item{Key: tok.Key, Value: v, HasType: tok.HasType}

			if err := current.LLUT.SetUnique(tok.Key, item); err != nil {
				diags = append(diags, Diagnostic{
					Severity: SeverityError, Code: E02,
					Message: fmt.Sprintf("duplicate key %q in scope %q", tok.Key, current.DisplayName()),
					Trace:   trace,
				})
			}
		}
	}

	return diags
}
