package parser

import (
	"fmt"
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/lexer"
	"cssfmt/internal/token"
)

type blockCtx uint8

const (
	ctxTop blockCtx = iota
	ctxBlock
	ctxKeyframes // правила внутри @keyframes становятся KeyframeBlock
)

// parseStatements - основной цикл: до EOF (верхний уровень) или до '}' (блок).
func (p *Parser) parseStatements(ctx blockCtx) []ast.Statement {
	var stmts []ast.Statement
	for {
		t := p.raw()
		switch t.Kind {
		case token.EOF:
			return stmts
		case token.RBrace:
			if ctx != ctxTop {
				return stmts
			}
			p.report(diag.SynUnexpectedRBrace, diag.SevError, t.Span, "unexpected '}'")
			p.advance()
		case token.Comment:
			stmts = append(stmts, &ast.Comment{Base: ast.Base{Sp: t.Span}, Text: t.Text})
			p.advance()
		case token.Semicolon, token.CDO, token.CDC:
			p.advance()
		case token.AtKeyword:
			if p.lessVariable() {
				stmts = append(stmts, p.parseDeclaration())
				continue
			}
			stmts = append(stmts, p.parseAtRule())
		default:
			if s := p.parseRuleOrDeclaration(ctx); s != nil {
				stmts = append(stmts, s)
			}
		}
	}
}

// parseBlock ожидает '{' на текущей позиции.
func (p *Parser) parseBlock(ctx blockCtx) *ast.Block {
	open := p.advance()
	b := &ast.Block{}
	b.Statements = p.parseStatements(ctx)
	end := p.raw()
	if end.Kind == token.RBrace {
		p.advance()
		b.Sp = open.Span.Cover(end.Span)
		return b
	}
	p.report(diag.SynUnclosedBlock, diag.SevError, open.Span, "unclosed block")
	// блок тянется до последнего токена перед EOF
	b.Sp = open.Span.Cover(p.toks[p.pos-1].Span)
	return b
}

func (p *Parser) parseAtRule() ast.Statement {
	kw := p.advance()
	name := &ast.Ident{Base: ast.Base{Sp: kw.Span}, Name: strings.TrimPrefix(kw.Text, "@")}

	end := p.scan(p.pos, false, func(t token.Token) bool {
		return t.Kind == token.LBrace || t.Kind == token.Semicolon || t.Kind == token.RBrace
	})
	preludeToks := p.toks[p.pos:end]
	p.pos = end

	rule := &ast.AtRule{Name: name}
	rule.Prelude = p.parsePrelude(name, preludeToks)
	rule.Sp = coverWith(kw.Span, preludeToks)

	switch p.raw().Kind {
	case token.LBrace:
		child := ctxBlock
		if isKeyframes(name.Name) {
			child = ctxKeyframes
		}
		rule.Block = p.parseBlock(child)
		rule.Sp = rule.Sp.Cover(rule.Block.Sp)
	case token.Semicolon:
		rule.Sp = rule.Sp.Cover(p.advance().Span)
	}
	return rule
}

// parseRuleOrDeclaration decides by looking ahead: a '{' before ';' or '}'
// starts a rule, anything else is a declaration. Custom properties are
// always declarations since their values may hold braces.
func (p *Parser) parseRuleOrDeclaration(ctx blockCtx) ast.Statement {
	start := p.peek()
	if start.Kind == token.Ident && strings.HasPrefix(start.Text, "--") && p.toks[p.pos+1].Kind == token.Colon {
		return p.parseDeclaration()
	}
	end := p.scan(p.pos, false, func(t token.Token) bool {
		return t.Kind == token.LBrace || t.Kind == token.Semicolon || t.Kind == token.RBrace
	})
	if p.toks[end].Kind == token.LBrace {
		if ctx == ctxKeyframes {
			return p.parseKeyframeBlock(end)
		}
		return p.parseQualifiedRule(end)
	}
	return p.parseDeclaration()
}

func (p *Parser) parseQualifiedRule(brace int) ast.Statement {
	toks := p.toks[p.pos:brace]
	p.pos = brace
	rule := &ast.QualifiedRule{Selectors: p.selectorList(toks)}
	rule.Block = p.parseBlock(ctxBlock)
	rule.Sp = coverWith(rule.Block.Sp, toks)
	return rule
}

// selectorList разбивает токены селектора по запятым верхнего уровня.
func (p *Parser) selectorList(toks []token.Token) *ast.SelectorList {
	list := &ast.SelectorList{Base: ast.Base{Sp: cover(toks)}}
	for _, seg := range splitTopLevel(toks) {
		if len(withoutComments(seg)) == 0 {
			sp := cover(toks)
			if len(seg) > 0 {
				sp = cover(seg)
			}
			p.report(diag.SynEmptyListItem, diag.SevError, sp, "empty selector in selector list")
			continue
		}
		list.Selectors = append(list.Selectors, &ast.Selector{
			Base:   ast.Base{Sp: cover(seg)},
			Tokens: &ast.TokenSeq{Base: ast.Base{Sp: cover(seg)}, Tokens: seg},
		})
	}
	return list
}

func (p *Parser) parseKeyframeBlock(brace int) ast.Statement {
	toks := p.toks[p.pos:brace]
	if len(withoutComments(toks)) != len(toks) {
		// комментарий между селекторами кадра: печатаем как обычное правило
		return p.parseQualifiedRule(brace)
	}
	var sels []ast.KeyframeSelector
	for _, seg := range splitTopLevel(toks) {
		sel, ok := keyframeSelector(seg)
		if !ok {
			sp := cover(toks)
			if len(seg) > 0 {
				sp = cover(seg)
			}
			p.report(diag.SynExpectSelector, diag.SevError, sp, "expected a percentage, from or to")
			return p.parseQualifiedRule(brace)
		}
		sels = append(sels, sel)
	}
	p.pos = brace
	kb := &ast.KeyframeBlock{Selectors: sels}
	kb.Block = p.parseBlock(ctxBlock)
	kb.Sp = coverWith(kb.Block.Sp, toks)
	return kb
}

func keyframeSelector(seg []token.Token) (ast.KeyframeSelector, bool) {
	if len(seg) == 1 && seg[0].Kind == token.Percentage {
		return &ast.Percentage{Base: ast.Base{Sp: seg[0].Span}, Raw: seg[0].Text}, true
	}
	s := newStream(seg, cover(seg))
	id, ok := s.interpolableIdent()
	if !ok || !s.eof() {
		return nil, false
	}
	switch x := id.(type) {
	case *ast.Ident:
		return x, true
	case *ast.InterpolatedIdent:
		return x, true
	}
	return nil, false
}

// parseDeclaration: name ':' value [!important] [';']. Comments inside the
// value stay in it; trailing ones follow "!important".
func (p *Parser) parseDeclaration() ast.Statement {
	first := p.peek()
	colon := p.scan(p.pos, false, func(t token.Token) bool {
		return t.Kind == token.Colon || t.Kind == token.Semicolon || t.Kind == token.RBrace || t.Kind == token.LBrace
	})
	if p.toks[colon].Kind != token.Colon {
		p.err(diag.SynExpectDeclaration, fmt.Sprintf("expected a declaration or rule, got %q", first.Text))
		p.recover()
		return nil
	}
	nameToks := withoutComments(p.toks[p.pos:colon])
	if len(nameToks) == 0 {
		p.err(diag.SynExpectIdentifier, "expected property name before ':'")
		p.recover()
		return nil
	}
	if inner := trimComments(p.toks[p.pos:colon]); len(inner) != len(nameToks) {
		for _, t := range inner {
			if t.Kind == token.Comment {
				p.report(diag.SynUnexpectedToken, diag.SevError, t.Span, "comments inside a property name are not supported")
				break
			}
		}
		p.recover()
		return nil
	}
	var name strings.Builder
	for _, t := range nameToks {
		name.WriteString(t.Text)
	}

	p.pos = colon + 1
	end := p.scan(p.pos, true, func(t token.Token) bool {
		return t.Kind == token.Semicolon || t.Kind == token.RBrace
	})
	value := p.toks[p.pos:end]
	p.pos = end
	sp := coverWith(cover(nameToks), value)

	decl := &ast.Declaration{Name: name.String()}
	core := trimTrailingComments(value)
	trailing := value[len(core):]
	if n := len(core); n >= 2 && core[n-2].IsDelim('!') && core[n-1].IsIdent("important") {
		decl.Important = true
		value = append(core[:n-2:n-2], trailing...)
	}
	if len(value) > 0 {
		decl.Value = &ast.TokenSeq{Base: ast.Base{Sp: cover(value)}, Tokens: value}
	}
	decl.Sp = sp
	if p.raw().Kind == token.Semicolon {
		decl.Sp = decl.Sp.Cover(p.advance().Span)
	}
	return decl
}

// lessVariable: "@name:" в Less - объявление переменной, а не at-rule.
func (p *Parser) lessVariable() bool {
	return p.dialect == lexer.DialectLess && p.toks[p.pos].Kind == token.AtKeyword && p.toks[p.pos+1].Kind == token.Colon
}

// recover пропускает токены до ';' или '}' верхнего уровня; ';' съедается.
func (p *Parser) recover() {
	p.pos = p.scan(p.pos, true, func(t token.Token) bool {
		return t.Kind == token.Semicolon || t.Kind == token.RBrace
	})
	if p.raw().Kind == token.Semicolon {
		p.advance()
	}
}

func trimTrailingComments(toks []token.Token) []token.Token {
	for len(toks) > 0 && toks[len(toks)-1].Kind == token.Comment {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// trimComments drops comments at both ends of a value.
func trimComments(toks []token.Token) []token.Token {
	for len(toks) > 0 && toks[0].Kind == token.Comment {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Kind == token.Comment {
		toks = toks[:len(toks)-1]
	}
	return toks
}
