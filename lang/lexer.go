package lang

import (
	"regexp"
	"strings"
)

// TokenKind classifies one logical (continuation-folded) source line.
type TokenKind int

const (
	TokBlank TokenKind = iota
	TokComment
	TokHeader
	TokItem
	TokSymbolDecl
	TokError
)

// Token is the lexer's output for one logical line.
type Token struct {
	Kind TokenKind

	// Header
	Name     string
	Closures []ClosureCall

	// Item / SymbolDecl
	Key     string
	TypeTag TypeTag
	HasType bool
	RHS     string
	IsEval  bool

	// Error
	Code    Code
	Message string
}

var headerRe = regexp.MustCompile(`^\[([^\]]*)\](?:\s*::\s*(.*))?$`)

// parseHeader recognizes `[NAME]` optionally followed by `:: CLOSURE_LIST`.
// It is used both by [Classify] and by the source reader, which must notice
// `include` invocations on the global header before scope tables exist.
func parseHeader(text string) (name string, closures []ClosureCall, ok bool) {
	m := headerRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", nil, false
	}

	name = strings.TrimSpace(m[1])
	if strings.TrimSpace(m[2]) == "" {
		return name, nil, true
	}

	for _, part := range strings.Split(m[2], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}

		call := ClosureCall{Name: fields[0]}
		for _, f := range fields[1:] {
			call.Args = append(call.Args, strings.TrimPrefix(f, ":"))
		}

		closures = append(closures, call)
	}

	return name, closures, true
}

// Classify turns one continuation-folded line into a [Token].
func Classify(fl FoldedLine) Token {
	trimmed := strings.TrimSpace(fl.Text)

	switch {
	case trimmed == "":
		return Token{Kind: TokBlank}
	case strings.HasPrefix(trimmed, ";"):
		return Token{Kind: TokComment}
	case strings.HasPrefix(trimmed, "["):
		name, closures, ok := parseHeader(trimmed)
		if !ok {
			return Token{Kind: TokError, Code: E03, Message: "malformed scope header"}
		}

		return Token{Kind: TokHeader, Name: name, Closures: closures}
	default:
		return classifyItem(trimmed)
	}
}

func classifyItem(text string) Token {
	if idx := strings.Index(text, ":="); idx >= 0 {
		key := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text[:idx]), ":"))
		if key == "" {
			return Token{Kind: TokError, Code: E03, Message: "eval assignment missing key"}
		}

		rhs := strings.TrimSpace(text[idx+2:])

		return Token{Kind: TokItem, Key: key, RHS: rhs, IsEval: true}
	}

	if idx := strings.Index(text, "="); idx >= 0 {
		key, tag, hasType, errMsg := parseKeyType(text[:idx])
		if errMsg != "" {
			return Token{Kind: TokError, Code: E03, Message: errMsg}
		}

		if key == "" {
			return Token{Kind: TokError, Code: E03, Message: "item missing key"}
		}

		// Quotes are kept as written, not stripped: a numeric type tag
		// checks the literal text, so a quoted digit string still fails
		// its declared type while str stays permissive either way.
		rhs := strings.TrimSpace(text[idx+1:])

		return Token{Kind: TokItem, Key: key, TypeTag: tag, HasType: hasType, RHS: rhs}
	}

	key, tag, hasType, errMsg := parseKeyType(text)
	if errMsg != "" {
		return Token{Kind: TokError, Code: E03, Message: errMsg}
	}

	if key == "" {
		return Token{Kind: TokError, Code: E03, Message: "symbol declaration missing key"}
	}

	return Token{Kind: TokSymbolDecl, Key: key, TypeTag: tag, HasType: hasType}
}

// parseKeyType splits "key", "key: TYPE", "key :TYPE", or ":symbol" forms
// into a bare key and an optional type tag.
func parseKeyType(s string) (key string, tag TypeTag, hasType bool, errMsg string) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")

	if idx := strings.Index(s, ":"); idx >= 0 {
		key = strings.TrimSpace(s[:idx])
		typeName := strings.TrimSpace(s[idx+1:])

		t, ok := ParseTypeTag(typeName)
		if !ok {
			return "", TypeNone, false, "unknown type \"" + typeName + "\""
		}

		return key, t, true, ""
	}

	return strings.TrimSpace(s), TypeNone, false, ""
}

