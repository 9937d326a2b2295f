package token

import (
	"cssfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind        Kind
	Span        source.Span
	Text        string
	SpaceBefore bool // whitespace or a comment separated it from the previous token
}

// Is reports whether the token has the given kind and exact text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsDelim reports whether the token is the single-character delimiter d.
func (t Token) IsDelim(d byte) bool {
	return t.Kind == Delim && len(t.Text) == 1 && t.Text[0] == d
}

// IsLineComment reports whether the token is a "//" comment. Such a comment
// runs to the end of the line, so a line break must follow it in the output.
func (t Token) IsLineComment() bool {
	return t.Kind == Comment && len(t.Text) >= 2 && t.Text[0] == '/' && t.Text[1] == '/'
}

// IsIdent reports whether the token is an identifier equal to name ignoring ASCII case.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && EqualFold(t.Text, name)
}

// Opens reports whether the token opens a nested (), [] or {} region.
// Function tokens open a parenthesised region as well.
func (t Token) Opens() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace, Function:
		return true
	default:
		return false
	}
}

// Closes reports whether the token closes a nested region.
func (t Token) Closes() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// EqualFold compares two ASCII strings case-insensitively.
// CSS keywords are ASCII; non-ASCII bytes must match exactly.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// ToLowerASCII lower-cases ASCII letters and leaves every other byte untouched.
func ToLowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
