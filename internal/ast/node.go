package ast

import (
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Base carries the source span of a node. Embed it to implement Node.
type Base struct {
	Sp source.Span
}

func (b Base) Span() source.Span { return b.Sp }

// Ident is an identifier exactly as written in the source.
type Ident struct {
	Base
	Name string
}

// IdentPart is one piece of an interpolated identifier: either literal text
// or a #{...} interpolation.
type IdentPart struct {
	Literal string
	Expr    *TokenSeq // non-nil for #{...}
}

// InterpolatedIdent is an identifier glued together from literal text and
// preprocessor interpolations, e.g. slide-#{$dir}.
type InterpolatedIdent struct {
	Base
	Parts []IdentPart
}

// DashedIdent is a --name identifier. Name excludes the leading dashes.
type DashedIdent struct {
	Base
	Name string
}

// Str is a quoted string. Raw keeps the quotes.
type Str struct {
	Base
	Raw   string
	Value string
}

// Number is a numeric literal.
type Number struct {
	Base
	Raw string
}

// Percentage is a number followed by '%'. Raw includes the sign.
type Percentage struct {
	Base
	Raw string
}

// Url is url(...) with either an unquoted value or a quoted string.
type Url struct {
	Base
	Name  string // "url" as written
	Raw   string // unquoted value; empty when Value is set
	Value *Str
}

// Function is name(args) where args are kept as component tokens.
type Function struct {
	Base
	Name string // without the opening parenthesis
	Args *TokenSeq
}

// DeviceCmyk is the device-cmyk keyword of @color-profile.
type DeviceCmyk struct {
	Base
	Raw string
}

// TokenSeq is a run of component values kept at token level.
type TokenSeq struct {
	Base
	Tokens []token.Token
}

// InterpolableIdent is an identifier that may contain interpolation.
type InterpolableIdent interface {
	Node
	interpolableIdent()
}

func (*Ident) interpolableIdent()             {}
func (*InterpolatedIdent) interpolableIdent() {}
