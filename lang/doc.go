// Package lang implements the Super INI compiler pipeline: a line-oriented
// lexer, a global/local scope model, a closure runtime, a reference
// resolver, a type checker, and an emitter that serializes the surviving
// scopes to canonical INI.
//
// The package is deliberately silent on two concerns that the caller must
// supply: expression evaluation for the eval closure (see [Evaluator]) and
// terminal presentation of diagnostics. Both are treated as external
// collaborators so the core stays a pure, synchronous pipeline over data.
//
// # Usage
//
//	result, err := lang.Compile("weapons.sini", lang.WithEvaluator(sandbox))
//	if err != nil {
//	    var cerr *lang.Error
//	    if errors.As(err, &cerr) {
//	        for _, d := range cerr.Diagnostics {
//	            fmt.Fprintln(os.Stderr, d.String())
//	        }
//	    }
//	    return err
//	}
//	result.WriteTo(os.Stdout)
package lang
