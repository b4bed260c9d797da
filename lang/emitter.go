package lang

import (
	"fmt"
	"io"
)

// Emit serializes the surviving (non-internal, non-empty) scopes of glut to
// canonical INI, in insertion order or alphabetic order if env.Sorted. When
// sorted, item order within each scope is also alphabetized (a supplemented
// behavior; see DESIGN.md). A scope with no items, most commonly the
// implicit __global__ scope when nothing was ever assigned outside a
// header, is skipped rather than emitted as a bare header.
func Emit(w io.Writer, glut *GLUT, env *Environment) error {
	names := glut.Names()
	if env != nil && env.Sorted {
		names = glut.SortedNames()
	}

	for _, name := range names {
		scope, _ := glut.Get(name)
		if scope.Flags.Internal || scope.LLUT.Len() == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "[%s]\n", scope.Name); err != nil {
			return err
		}

		keys := scope.LLUT.Keys()
		if env != nil && env.Sorted {
			keys = scope.LLUT.SortedKeys()
		}

		for _, key := range keys {
			item, _ := scope.LLUT.GetItem(key)

			if _, err := fmt.Fprintf(w, "%s=%s\n", key, item.Value.Text); err != nil {
				return err
			}
		}
	}

	return nil
}
