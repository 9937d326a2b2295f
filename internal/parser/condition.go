package parser

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

// mediaQueryList consumes the rest of s as a comma separated query list.
func (pp *preludeParser) mediaQueryList(s *stream) *ast.MediaQueryList {
	rest := s.rest()
	s.i = len(s.toks)
	list := &ast.MediaQueryList{Base: ast.Base{Sp: cover(rest)}}
	for _, seg := range splitTopLevel(rest) {
		if len(seg) == 0 {
			pp.fail(pp.sp, diag.SynEmptyListItem, "empty media query")
			return nil
		}
		q := pp.mediaQuery(seg)
		if q == nil {
			return nil
		}
		list.Queries = append(list.Queries, q)
	}
	return list
}

func (pp *preludeParser) mediaQuery(seg []token.Token) ast.MediaQuery {
	sp := cover(seg)
	s := newStream(seg, sp)
	t := s.peek()
	if startsCondition(t) || (t.IsIdent("not") && startsCondition(s.peekN(1))) {
		c := pp.condition(s)
		if c == nil || !pp.expectEnd(s) {
			return nil
		}
		return &ast.MediaConditionQuery{Base: ast.Base{Sp: sp}, Condition: c}
	}

	q := &ast.MediaTypeQuery{Base: ast.Base{Sp: sp}}
	if t.IsIdent("not") || t.IsIdent("only") {
		q.Modifier = identOf(s.next())
	}
	mt, ok := s.interpolableIdent()
	if !ok {
		pp.fail(s.peek().Span, diag.SynExpectIdentifier, "expected media type")
		return nil
	}
	q.MediaType = mt
	if s.eof() {
		return q
	}
	if !s.peek().IsIdent("and") {
		pp.fail(s.peek().Span, diag.SynUnexpectedToken, "expected 'and' after media type")
		return nil
	}
	q.And = identOf(s.next())
	if q.Condition = pp.condition(s); q.Condition == nil || !pp.expectEnd(s) {
		return nil
	}
	return q
}

func startsCondition(t token.Token) bool {
	return t.Kind == token.LParen || t.Kind == token.Function
}

// condition: [not] operand {(and|or) operand}.
func (pp *preludeParser) condition(s *stream) *ast.Condition {
	start := s.i
	c := &ast.Condition{}
	for {
		var kw *ast.Ident
		t := s.peek()
		switch {
		case len(c.Terms) == 0 && t.IsIdent("not"):
			kw = identOf(s.next())
		case len(c.Terms) > 0:
			if !t.IsIdent("and") && !t.IsIdent("or") {
				c.Sp = cover(s.toks[start:s.i])
				return c
			}
			kw = identOf(s.next())
		}
		op := pp.inParens(s)
		if op == nil {
			return nil
		}
		c.Terms = append(c.Terms, ast.ConditionTerm{Keyword: kw, Operand: op})
	}
}

func (pp *preludeParser) inParens(s *stream) ast.InParens {
	t := s.peek()
	if !startsCondition(t) {
		pp.fail(t.Span, diag.SynUnexpectedToken, "expected '(' or a function in condition")
		return nil
	}
	closeIdx := s.closing(s.i)
	if closeIdx < 0 {
		pp.fail(t.Span, diag.SynUnclosedParen, "unclosed '('")
		return nil
	}
	open := s.i
	s.i = closeIdx + 1
	if t.Kind == token.Function {
		return &ast.FunctionQuery{Base: ast.Base{Sp: cover(s.toks[open : closeIdx+1])}, Function: functionOf(s.toks, open, closeIdx)}
	}
	return pp.parenContent(s.toks[open+1:closeIdx], t.Span.Cover(s.toks[closeIdx].Span))
}

// parenContent classifies the inside of (...): nested condition, feature,
// boolean feature or range.
func (pp *preludeParser) parenContent(inner []token.Token, sp source.Span) ast.InParens {
	if len(inner) == 0 {
		pp.fail(sp, diag.SynUnexpectedToken, "empty parentheses in condition")
		return nil
	}
	first := inner[0]
	if startsCondition(first) || (first.IsIdent("not") && len(inner) > 1 && startsCondition(inner[1])) {
		sub := newStream(inner, sp)
		c := pp.condition(sub)
		if c == nil || !pp.expectEnd(sub) {
			return nil
		}
		return &ast.ParenCondition{Base: ast.Base{Sp: sp}, Condition: c}
	}
	if first.Kind == token.Ident && len(inner) >= 2 && inner[1].Kind == token.Colon {
		f := &ast.Feature{Base: ast.Base{Sp: sp}, Name: identOf(first)}
		if value := inner[2:]; len(value) > 0 {
			f.Value = &ast.TokenSeq{Base: ast.Base{Sp: cover(value)}, Tokens: value}
		}
		return f
	}
	if first.Kind == token.Ident && len(inner) == 1 {
		return &ast.BooleanFeature{Base: ast.Base{Sp: sp}, Name: identOf(first)}
	}
	return &ast.RangeFeature{Base: ast.Base{Sp: sp}, Tokens: &ast.TokenSeq{Base: ast.Base{Sp: cover(inner)}, Tokens: inner}}
}

func (pp *preludeParser) expectEnd(s *stream) bool {
	if s.eof() {
		return true
	}
	pp.fail(s.peek().Span, diag.SynUnexpectedToken, "unexpected "+quote(s.peek().Text)+" in condition")
	return false
}
