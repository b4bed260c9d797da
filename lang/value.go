package lang

import "strings"

// TypeTag identifies the declared or inferred type of a [Value].
type TypeTag int

// Recognized type tags, per the literal shapes and typed-assignment grammar.
const (
	TypeNone TypeTag = iota
	TypeInt
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeU8
	TypeFloat
	TypeF32
	TypeStr
	TypeBool
)

func (t TypeTag) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeI8:
		return "i8"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeU8:
		return "u8"
	case TypeFloat:
		return "float"
	case TypeF32:
		return "f32"
	case TypeStr:
		return "str"
	case TypeBool:
		return "bool"
	default:
		return "none"
	}
}

// ParseTypeTag resolves a type name as it appears in a typed assignment
// (e.g. "i32" in "damage :i32 = 355") to a [TypeTag].
func ParseTypeTag(name string) (TypeTag, bool) {
	switch strings.TrimSpace(name) {
	case "int":
		return TypeInt, true
	case "i8":
		return TypeI8, true
	case "i16":
		return TypeI16, true
	case "i32":
		return TypeI32, true
	case "i64":
		return TypeI64, true
	case "u8":
		return TypeU8, true
	case "float":
		return TypeFloat, true
	case "f32":
		return TypeF32, true
	case "str":
		return TypeStr, true
	case "bool":
		return TypeBool, true
	default:
		return TypeNone, false
	}
}

// Trace identifies the origin of a [Value] or [Scope]: the source file,
// 1-based line number, and the name of the enclosing scope.
type Trace struct {
	File  string
	Line  int
	Scope string
}

// Value is an immutable (once type-checked) right-hand side: the raw text
// as written after continuation folding, its type tag, and its trace.
// Closures that rewrite a value produce a new Value that keeps the same
// trace.
type Value struct {
	Text  string
	Type  TypeTag
	Trace Trace
}

// InferType chooses the narrowest fitting type tag for an untyped literal.
// An explicit type tag from a typed assignment is always authoritative and
// bypasses this inference.
func InferType(rhs string) TypeTag {
	if len(rhs) >= 2 && strings.HasPrefix(rhs, `"`) && strings.HasSuffix(rhs, `"`) {
		return TypeStr
	}

	if rhs == "True" || rhs == "False" {
		return TypeBool
	}

	if looksInt(rhs) {
		return TypeInt
	}

	if looksFloat(rhs) {
		return TypeFloat
	}

	return TypeStr
}

func looksInt(s string) bool {
	if s == "" {
		return false
	}

	if s[0] == '-' {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return isDigits(s[2:], 16)
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		return isDigits(s[2:], 2)
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		return isDigits(s[2:], 8)
	default:
		return isDigits(s, 10)
	}
}

func isDigits(s string, base int) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case base == 16 && ((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')):
		case base == 8 && r >= '0' && r <= '7':
		case base == 2 && (r == '0' || r == '1'):
		case base == 10 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}

func looksFloat(s string) bool {
	if !strings.ContainsAny(s, ".eE") {
		return false
	}

	trimmed := strings.TrimPrefix(s, "-")

	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-':
		default:
			return false
		}
	}

	return trimmed != ""
}
