package lang

import "testing"

func TestParseIntLiteral_U8Boundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"255 fits", "255", true},
		{"256 overflows", "256", false},
		{"negative one rejected", "-1", false},
		{"zero fits", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseIntLiteral(tt.text, 8, false)
			if ok != tt.ok {
				t.Errorf("parseIntLiteral(%q, 8, false): expected ok=%v, got %v", tt.text, tt.ok, ok)
			}
		})
	}
}

func TestParseIntLiteral_I8Boundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"0b01111111 is 127, fits", "0b01111111", true},
		{"0b10000000 is 128, unsigned bit pattern overflows", "0b10000000", false},
		{"-128 fits", "-128", true},
		{"-129 overflows", "-129", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseIntLiteral(tt.text, 8, true)
			if ok != tt.ok {
				t.Errorf("parseIntLiteral(%q, 8, true): expected ok=%v, got %v", tt.text, tt.ok, ok)
			}
		})
	}
}

func TestCheckType_U8(t *testing.T) {
	tests := []struct {
		name string
		text string
		fail bool
	}{
		{"255 passes", "255", false},
		{"256 fails", "256", true},
		{"-1 fails", "-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := checkType(Value{Text: tt.text, Type: TypeU8})
			if (reason != "") != tt.fail {
				t.Errorf("checkType(%q, u8): expected fail=%v, got reason %q", tt.text, tt.fail, reason)
			}
		})
	}
}

func TestCheckType_I8(t *testing.T) {
	tests := []struct {
		name string
		text string
		fail bool
	}{
		{"0b01111111 (127) passes", "0b01111111", false},
		{"0b10000000 (128) fails", "0b10000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := checkType(Value{Text: tt.text, Type: TypeI8})
			if (reason != "") != tt.fail {
				t.Errorf("checkType(%q, i8): expected fail=%v, got reason %q", tt.text, tt.fail, reason)
			}
		})
	}
}

func TestCheckType_QuotedNumericLiteralFailsNumericType(t *testing.T) {
	// A quoted digit string is a str literal, not a numeric one: the quotes
	// must survive lexing so this fails i32 the same way it would fail in
	// the reference implementation's character-class check.
	reason := checkType(Value{Text: `"355"`, Type: TypeI32})
	if reason == "" {
		t.Error(`expected "355" (quoted) to fail an i32 type check`)
	}

	if reason := checkType(Value{Text: `"355"`, Type: TypeStr}); reason != "" {
		t.Errorf("expected quoted str literal to pass a str type check, got %q", reason)
	}
}

func TestCheckType_Bool(t *testing.T) {
	if reason := checkType(Value{Text: "True", Type: TypeBool}); reason != "" {
		t.Errorf("expected True to pass, got %q", reason)
	}

	if reason := checkType(Value{Text: "yes", Type: TypeBool}); reason == "" {
		t.Error("expected 'yes' to fail bool type check")
	}
}

func TestCheckTypes_CollectsE07ForUntypedVsTypedItems(t *testing.T) {
	glut := NewGLUT()
	scope := &Scope{Name: "s", LLUT: NewLLUT()}

	scope.LLUT.SetUnique("ok", Item{
		Key: "ok", HasType: true,
		Value: Value{Text: "255", Type: TypeU8},
	})
	scope.LLUT.SetUnique("bad", Item{
		Key: "bad", HasType: true,
		Value: Value{Text: "256", Type: TypeU8},
	})
	scope.LLUT.SetUnique("untyped", Item{
		Key: "untyped", HasType: false,
		Value: Value{Text: "anything goes", Type: TypeStr},
	})

	if err := glut.Add(scope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	diags := CheckTypes(glut)
	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", diags)
	}

	if diags[0].Code != E07 {
		t.Errorf("expected E07, got %v", diags[0].Code)
	}
}
