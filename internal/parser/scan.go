package parser

import (
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// scan walks p.toks from index from and returns the index of the first
// token at nesting depth zero accepted by stop (or of EOF). (), [],
// function arguments and #{} interpolations nest; plain {} nest only when
// braces is set.
func (p *Parser) scan(from int, braces bool, stop func(token.Token) bool) int {
	return scanTokens(p.toks, from, braces, stop)
}

func scanTokens(toks []token.Token, from int, braces bool, stop func(token.Token) bool) int {
	depth := 0
	for i := from; i < len(toks); i++ {
		t := toks[i]
		if t.Kind == token.EOF {
			return i
		}
		interp := opensInterpolation(toks, i)
		if depth == 0 && !interp && stop(t) {
			return i
		}
		switch {
		case interp, t.Kind == token.LBrace && braces:
			depth++
		case t.Kind == token.Function, t.Kind == token.LParen, t.Kind == token.LBracket:
			depth++
		case t.Closes():
			if depth > 0 {
				depth--
			}
		}
	}
	return len(toks)
}

// opensInterpolation reports whether toks[i] is the brace of a #{.
func opensInterpolation(toks []token.Token, i int) bool {
	return i > 0 && toks[i].Kind == token.LBrace && !toks[i].SpaceBefore && toks[i-1].IsDelim('#')
}

// splitTopLevel splits toks on commas at nesting depth zero.
func splitTopLevel(toks []token.Token) [][]token.Token {
	var out [][]token.Token
	start := 0
	for {
		i := scanTokens(toks, start, true, func(t token.Token) bool { return t.Kind == token.Comma })
		if i >= len(toks) || toks[i].Kind == token.EOF {
			out = append(out, toks[start:min(i, len(toks))])
			return out
		}
		out = append(out, toks[start:i])
		start = i + 1
	}
}

// withoutComments returns toks with comment tokens removed. The slice is
// copied only when a comment is present.
func withoutComments(toks []token.Token) []token.Token {
	for i, t := range toks {
		if t.Kind != token.Comment {
			continue
		}
		out := make([]token.Token, 0, len(toks)-1)
		out = append(out, toks[:i]...)
		for _, t := range toks[i+1:] {
			if t.Kind != token.Comment {
				out = append(out, t)
			}
		}
		return out
	}
	return toks
}

func cover(toks []token.Token) source.Span {
	if len(toks) == 0 {
		return source.Span{}
	}
	return toks[0].Span.Cover(toks[len(toks)-1].Span)
}

// coverWith extends sp over toks; an empty toks leaves sp unchanged.
func coverWith(sp source.Span, toks []token.Token) source.Span {
	if len(toks) == 0 {
		return sp
	}
	return sp.Cover(cover(toks))
}
