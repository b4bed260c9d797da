package lang

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CheckTypes validates every item carrying a declared type tag against its
// current value text. Untyped items are not checked.
func CheckTypes(glut *GLUT) Diagnostics {
	var diags Diagnostics

	for _, name := range glut.Names() {
		scope, _ := glut.Get(name)

		for _, key := range scope.LLUT.Keys() {
			item, _ := scope.LLUT.GetItem(key)
			if !item.HasType {
				continue
			}

			if reason := checkType(item.Value); reason != "" {
				diags = append(diags, Diagnostic{
					Severity: SeverityError, Code: E07,
					Message: fmt.Sprintf("%s: %s", item.Value.Type, reason),
					Trace:   item.Value.Trace,
				})
			}
		}
	}

	return diags
}

func checkType(v Value) string {
	switch v.Type {
	case TypeInt:
		if _, ok := parseIntLiteral(v.Text, 64, true); !ok {
			return "expected an integer literal"
		}
	case TypeI8:
		if _, ok := parseIntLiteral(v.Text, 8, true); !ok {
			return "expected an integer literal fitting i8"
		}
	case TypeI16:
		if _, ok := parseIntLiteral(v.Text, 16, true); !ok {
			return "expected an integer literal fitting i16"
		}
	case TypeI32:
		if _, ok := parseIntLiteral(v.Text, 32, true); !ok {
			return "expected an integer literal fitting i32"
		}
	case TypeI64:
		if _, ok := parseIntLiteral(v.Text, 64, true); !ok {
			return "expected an integer literal fitting i64"
		}
	case TypeU8:
		n, ok := parseIntLiteral(v.Text, 8, false)
		if !ok || n < 0 || n > 255 {
			return "expected a non-negative integer literal <= 255"
		}
	case TypeFloat:
		if _, err := strconv.ParseFloat(v.Text, 64); err != nil {
			return "expected a numeric literal"
		}
	case TypeF32:
		f, err := strconv.ParseFloat(v.Text, 32)
		if err != nil || math.IsInf(f, 0) {
			return "expected a numeric literal representable as f32"
		}
	case TypeBool:
		if v.Text != "True" && v.Text != "False" {
			return "expected True or False"
		}
	case TypeStr, TypeNone:
		// str accepts everything, including quoted numerics; untyped
		// items are never checked.
	}

	return ""
}

// parseIntLiteral parses a decimal, 0x, 0b, or 0o integer literal with an
// optional leading '-' and reports whether it fits the given bit width,
// two's-complement for signed types or a plain non-negative range for
// unsigned.
func parseIntLiteral(text string, bits int, signed bool) (int64, bool) {
	neg := false
	s := text

	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	base := 10

	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	}

	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, false
	}

	if u > math.MaxInt64 && !(neg && u == math.MaxInt64+1) {
		return 0, false
	}

	n := int64(u)
	if neg {
		n = -n
	}

	if !signed {
		if neg {
			return n, false
		}

		if bits < 64 && u >= uint64(1)<<uint(bits) {
			return n, false
		}

		return n, true
	}

	if bits >= 64 {
		return n, true
	}

	limit := int64(1) << uint(bits-1)
	if n < -limit || n > limit-1 {
		return n, false
	}

	return n, true
}
