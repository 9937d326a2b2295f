package parser

import (
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// stream is a cursor over an already collected run of tokens, such as an
// at-rule prelude. Running past the end yields EOF tokens positioned at end.
type stream struct {
	toks []token.Token
	i    int
	end  source.Span
}

func newStream(toks []token.Token, sp source.Span) *stream {
	return &stream{toks: toks, end: source.Span{File: sp.File, Start: sp.End, End: sp.End}}
}

func (s *stream) eof() bool { return s.i >= len(s.toks) }

func (s *stream) peek() token.Token { return s.peekN(0) }

func (s *stream) peekN(n int) token.Token {
	if s.i+n >= len(s.toks) {
		return token.Token{Kind: token.EOF, Span: s.end}
	}
	return s.toks[s.i+n]
}

func (s *stream) next() token.Token {
	t := s.peek()
	if !s.eof() {
		s.i++
	}
	return t
}

func (s *stream) rest() []token.Token {
	if s.eof() {
		return nil
	}
	return s.toks[s.i:]
}

// closing returns the index of the token closing the region opened at
// index open, or -1.
func (s *stream) closing(open int) int {
	depth := 0
	for i := open; i < len(s.toks); i++ {
		switch t := s.toks[i]; {
		case t.Opens():
			depth++
		case t.Closes():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// interpolableIdent reads an identifier glued from adjacent identifier
// pieces and #{...} interpolations.
func (s *stream) interpolableIdent() (ast.InterpolableIdent, bool) {
	start := s.i
	var parts []ast.IdentPart
loop:
	for !s.eof() {
		t := s.peek()
		if len(parts) > 0 && t.SpaceBefore {
			break
		}
		switch {
		case t.Kind == token.Ident:
			parts = append(parts, ast.IdentPart{Literal: t.Text})
			s.next()
		case len(parts) > 0 && (t.Kind == token.Number || t.Kind == token.Dimension):
			parts = append(parts, ast.IdentPart{Literal: t.Text})
			s.next()
		case t.IsDelim('#') && s.peekN(1).Kind == token.LBrace && !s.peekN(1).SpaceBefore:
			closeIdx := s.closing(s.i + 1)
			if closeIdx < 0 {
				break loop
			}
			inner := s.toks[s.i+2 : closeIdx]
			parts = append(parts, ast.IdentPart{Expr: &ast.TokenSeq{Base: ast.Base{Sp: cover(inner)}, Tokens: inner}})
			s.i = closeIdx + 1
		default:
			break loop
		}
	}
	if len(parts) == 0 {
		return nil, false
	}
	sp := cover(s.toks[start:s.i])
	if len(parts) == 1 && parts[0].Expr == nil {
		return &ast.Ident{Base: ast.Base{Sp: sp}, Name: parts[0].Literal}, true
	}
	return &ast.InterpolatedIdent{Base: ast.Base{Sp: sp}, Parts: mergeLiterals(parts)}, true
}

// mergeLiterals joins neighbouring literal parts.
func mergeLiterals(parts []ast.IdentPart) []ast.IdentPart {
	out := parts[:0:0]
	for _, part := range parts {
		if n := len(out); n > 0 && part.Expr == nil && out[n-1].Expr == nil {
			out[n-1].Literal += part.Literal
			continue
		}
		out = append(out, part)
	}
	return out
}

func identOf(t token.Token) *ast.Ident {
	return &ast.Ident{Base: ast.Base{Sp: t.Span}, Name: t.Text}
}

func strOf(t token.Token) *ast.Str {
	v := t.Text
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	} else if len(v) >= 1 {
		v = v[1:]
	}
	return &ast.Str{Base: ast.Base{Sp: t.Span}, Raw: t.Text, Value: v}
}

// urlOf splits a url(...) token into its name and value.
func urlOf(t token.Token) *ast.Url {
	u := &ast.Url{Base: ast.Base{Sp: t.Span}, Name: "url"}
	open := strings.IndexByte(t.Text, '(')
	if open < 0 {
		u.Raw = t.Text
		return u
	}
	u.Name = t.Text[:open]
	inner := strings.TrimSuffix(t.Text[open+1:], ")")
	inner = strings.TrimSpace(inner)
	if inner != "" && (inner[0] == '"' || inner[0] == '\'') {
		u.Value = strOf(token.Token{Kind: token.String, Span: t.Span, Text: inner})
		return u
	}
	u.Raw = inner
	return u
}

func functionOf(toks []token.Token, open, closeIdx int) *ast.Function {
	args := toks[open+1 : closeIdx]
	return &ast.Function{
		Base: ast.Base{Sp: toks[open].Span.Cover(toks[closeIdx].Span)},
		Name: strings.TrimSuffix(toks[open].Text, "("),
		Args: &ast.TokenSeq{Base: ast.Base{Sp: cover(args)}, Tokens: args},
	}
}

func dashedOf(t token.Token) (*ast.DashedIdent, bool) {
	if t.Kind != token.Ident || !strings.HasPrefix(t.Text, "--") || len(t.Text) == 2 {
		return nil, false
	}
	return &ast.DashedIdent{Base: ast.Base{Sp: t.Span}, Name: t.Text[2:]}, true
}
