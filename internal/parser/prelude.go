package parser

import (
	"fmt"
	"strconv"
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

type preludeParser struct {
	p    *Parser
	name string // имя at-rule как в исходнике, без '@'
	sp   source.Span
	bad  bool
}

// fail reports the first problem of a prelude only.
func (pp *preludeParser) fail(sp source.Span, code diag.Code, msg string) {
	if !pp.bad {
		pp.p.report(code, diag.SevError, sp, fmt.Sprintf("@%s: %s", pp.name, msg))
	}
	pp.bad = true
}

type preludeFn func(pp *preludeParser, s *stream) ast.Prelude

var preludeParsers = map[string]preludeFn{
	"media":               (*preludeParser).media,
	"charset":             (*preludeParser).charset,
	"color-profile":       (*preludeParser).colorProfile,
	"container":           (*preludeParser).container,
	"counter-style":       (*preludeParser).counterStyle,
	"custom-media":        (*preludeParser).customMedia,
	"document":            (*preludeParser).document,
	"font-feature-values": (*preludeParser).fontFeatureValues,
	"font-palette-values": (*preludeParser).fontPaletteValues,
	"import":              (*preludeParser).importPrelude,
	"keyframes":           (*preludeParser).keyframes,
	"layer":               (*preludeParser).layer,
	"namespace":           (*preludeParser).namespace,
	"nest":                (*preludeParser).nest,
	"page":                (*preludeParser).page,
	"position-fallback":   (*preludeParser).positionFallback,
	"property":            (*preludeParser).property,
	"scroll-timeline":     (*preludeParser).scrollTimeline,
	"supports":            (*preludeParser).supports,
}

// sassDirectives keep their prelude as a raw expression.
var sassDirectives = map[string]struct{}{
	"if": {}, "else": {}, "each": {}, "for": {}, "while": {}, "return": {},
	"include": {}, "mixin": {}, "function": {}, "use": {}, "forward": {},
	"debug": {}, "warn": {}, "error": {}, "extend": {}, "at-root": {}, "content": {},
}

// parsePrelude выбирает разбор по имени at-rule (без учёта регистра и
// вендорного префикса). Ошибка разбора даёт UnknownPrelude с исходными токенами.
func (p *Parser) parsePrelude(name *ast.Ident, toks []token.Token) ast.Prelude {
	if len(toks) == 0 {
		return nil
	}
	sp := cover(toks)
	key := ruleKey(name.Name)
	if _, ok := sassDirectives[key]; ok {
		return &ast.VendorExprPrelude{Base: ast.Base{Sp: sp}, Expr: &ast.TokenSeq{Base: ast.Base{Sp: sp}, Tokens: toks}}
	}
	unknown := &ast.UnknownPrelude{Base: ast.Base{Sp: sp}, Name: name.Name, Tokens: &ast.TokenSeq{Base: ast.Base{Sp: sp}, Tokens: toks}}
	fn, ok := preludeParsers[key]
	if !ok {
		return unknown
	}
	// разобранная прелюдия комментарии не хранит; оставляем как есть
	if stripped := withoutComments(toks); len(stripped) != len(toks) {
		return unknown
	}

	pp := &preludeParser{p: p, name: name.Name, sp: sp}
	s := newStream(toks, sp)
	pr := fn(pp, s)
	if !pp.bad && !s.eof() {
		pp.fail(s.peek().Span, diag.SynUnexpectedToken, "unexpected "+quote(s.peek().Text))
	}
	if pp.bad || pr == nil {
		return unknown
	}
	return pr
}

// ruleKey lower-cases an at-rule name and strips a vendor prefix.
func ruleKey(name string) string {
	key := token.ToLowerASCII(name)
	if strings.HasPrefix(key, "-") {
		if i := strings.IndexByte(key[1:], '-'); i >= 0 {
			key = key[i+2:]
		}
	}
	return key
}

func isKeyframes(name string) bool {
	return ruleKey(name) == "keyframes"
}

func quote(s string) string {
	return strconv.Quote(s)
}

func (pp *preludeParser) base() ast.Base {
	return ast.Base{Sp: pp.sp}
}

func (pp *preludeParser) media(s *stream) ast.Prelude {
	q := pp.mediaQueryList(s)
	if q == nil {
		return nil
	}
	return &ast.MediaPrelude{Base: pp.base(), Queries: q}
}

func (pp *preludeParser) charset(s *stream) ast.Prelude {
	t := s.next()
	if t.Kind != token.String {
		pp.fail(t.Span, diag.SynExpectString, "expected a quoted charset name")
		return nil
	}
	return &ast.CharsetPrelude{Base: pp.base(), Charset: strOf(t)}
}

func (pp *preludeParser) colorProfile(s *stream) ast.Prelude {
	t := s.next()
	if d, ok := dashedOf(t); ok {
		return &ast.ColorProfilePrelude{Base: pp.base(), Name: d}
	}
	if t.IsIdent("device-cmyk") {
		return &ast.ColorProfilePrelude{Base: pp.base(), Name: &ast.DeviceCmyk{Base: ast.Base{Sp: t.Span}, Raw: t.Text}}
	}
	pp.fail(t.Span, diag.SynExpectIdentifier, "expected --name or device-cmyk")
	return nil
}

func (pp *preludeParser) container(s *stream) ast.Prelude {
	pr := &ast.ContainerPrelude{Base: pp.base()}
	if t := s.peek(); t.Kind == token.Ident && !t.IsIdent("not") {
		pr.Name = identOf(s.next())
	}
	if s.eof() {
		pp.fail(s.peek().Span, diag.SynBadPrelude, "expected a container condition")
		return nil
	}
	if pr.Condition = pp.condition(s); pr.Condition == nil {
		return nil
	}
	return pr
}

func (pp *preludeParser) counterStyle(s *stream) ast.Prelude {
	id, ok := s.interpolableIdent()
	if !ok {
		pp.fail(s.peek().Span, diag.SynExpectIdentifier, "expected a counter style name")
		return nil
	}
	return &ast.CounterStylePrelude{Base: pp.base(), Name: id}
}

func (pp *preludeParser) customMedia(s *stream) ast.Prelude {
	name, ok := dashedOf(s.next())
	if !ok {
		pp.fail(pp.sp, diag.SynExpectIdentifier, "expected --name")
		return nil
	}
	pr := &ast.CustomMediaPrelude{Base: pp.base(), Name: name}
	if t := s.peek(); (t.IsIdent("true") || t.IsIdent("false")) && s.peekN(1).Kind == token.EOF {
		s.next()
		pr.Value = &ast.CustomMediaBool{Base: ast.Base{Sp: t.Span}, Value: t.IsIdent("true")}
		return pr
	}
	if s.eof() {
		pp.fail(s.peek().Span, diag.SynBadPrelude, "expected a media query list, true or false")
		return nil
	}
	q := pp.mediaQueryList(s)
	if q == nil {
		return nil
	}
	pr.Value = q
	return pr
}

func (pp *preludeParser) document(s *stream) ast.Prelude {
	pr := &ast.DocumentPrelude{Base: pp.base()}
	for _, seg := range pp.items(s, "document matcher") {
		switch {
		case len(seg) == 1 && seg[0].Kind == token.URL:
			pr.Matchers = append(pr.Matchers, urlOf(seg[0]))
		case seg[0].Kind == token.Function && newStream(seg, cover(seg)).closing(0) == len(seg)-1:
			pr.Matchers = append(pr.Matchers, functionOf(seg, 0, len(seg)-1))
		default:
			pp.fail(cover(seg), diag.SynBadPrelude, "expected url(), url-prefix(), domain() or regexp()")
			return nil
		}
	}
	if pp.bad {
		return nil
	}
	return pr
}

func (pp *preludeParser) fontFeatureValues(s *stream) ast.Prelude {
	pr := &ast.FontFeatureValuesPrelude{Base: pp.base()}
	for _, seg := range pp.items(s, "font family name") {
		if len(seg) == 1 && seg[0].Kind == token.String {
			pr.Names = append(pr.Names, strOf(seg[0]))
			continue
		}
		name := &ast.UnquotedFontFamilyName{Base: ast.Base{Sp: cover(seg)}}
		for _, t := range seg {
			if t.Kind != token.Ident {
				pp.fail(t.Span, diag.SynExpectIdentifier, "expected a font family name")
				return nil
			}
			name.Idents = append(name.Idents, identOf(t))
		}
		pr.Names = append(pr.Names, name)
	}
	if pp.bad {
		return nil
	}
	return pr
}

func (pp *preludeParser) fontPaletteValues(s *stream) ast.Prelude {
	if d := pp.dashed(s); d != nil {
		return &ast.FontPaletteValuesPrelude{Base: pp.base(), Name: d}
	}
	return nil
}

func (pp *preludeParser) positionFallback(s *stream) ast.Prelude {
	if d := pp.dashed(s); d != nil {
		return &ast.PositionFallbackPrelude{Base: pp.base(), Name: d}
	}
	return nil
}

func (pp *preludeParser) property(s *stream) ast.Prelude {
	if d := pp.dashed(s); d != nil {
		return &ast.PropertyPrelude{Base: pp.base(), Name: d}
	}
	return nil
}

func (pp *preludeParser) dashed(s *stream) *ast.DashedIdent {
	t := s.next()
	d, ok := dashedOf(t)
	if !ok {
		pp.fail(t.Span, diag.SynExpectIdentifier, "expected --name")
		return nil
	}
	return d
}

// importPrelude: href [layer|layer(name)] [supports(...)] [media].
func (pp *preludeParser) importPrelude(s *stream) ast.Prelude {
	pr := &ast.ImportPrelude{Base: pp.base()}
	switch t := s.next(); t.Kind {
	case token.String:
		pr.Href = strOf(t)
	case token.URL:
		pr.Href = urlOf(t)
	default:
		pp.fail(t.Span, diag.SynExpectString, "expected a string or url()")
		return nil
	}

	if t := s.peek(); t.IsIdent("layer") {
		s.next()
		pr.Layer = &ast.ImportLayer{Base: ast.Base{Sp: t.Span}, Keyword: t.Text}
	} else if t.Kind == token.Function && token.EqualFold(t.Text, "layer(") {
		fn := pp.function(s)
		if fn == nil {
			return nil
		}
		name := pp.layerName(fn.Args.Tokens)
		if name == nil {
			return nil
		}
		pr.Layer = &ast.ImportLayer{Base: fn.Base, Keyword: fn.Name, Name: name}
	}

	if t := s.peek(); t.Kind == token.Function && token.EqualFold(t.Text, "supports(") {
		fn := pp.function(s)
		if fn == nil {
			return nil
		}
		args := fn.Args.Tokens
		sup := &ast.ImportSupports{Base: fn.Base, Keyword: fn.Name}
		if len(args) >= 2 && args[0].Kind == token.Ident && args[1].Kind == token.Colon {
			sup.Decl, _ = pp.parenContent(args, cover(args)).(*ast.Feature)
		} else {
			sub := newStream(args, cover(args))
			if sup.Condition = pp.condition(sub); sup.Condition == nil || !pp.expectEnd(sub) {
				return nil
			}
		}
		if sup.Decl == nil && sup.Condition == nil {
			return nil
		}
		pr.Supports = sup
	}

	if !s.eof() {
		if pr.Media = pp.mediaQueryList(s); pr.Media == nil {
			return nil
		}
	}
	return pr
}

// function reads a function token with its arguments.
func (pp *preludeParser) function(s *stream) *ast.Function {
	closeIdx := s.closing(s.i)
	if closeIdx < 0 {
		pp.fail(s.peek().Span, diag.SynUnclosedParen, "unclosed '('")
		return nil
	}
	fn := functionOf(s.toks, s.i, closeIdx)
	s.i = closeIdx + 1
	return fn
}

func (pp *preludeParser) keyframes(s *stream) ast.Prelude {
	switch t := s.peek(); {
	case t.Kind == token.String:
		s.next()
		return &ast.KeyframesPrelude{Base: pp.base(), Name: strOf(t)}
	case t.Kind == token.AtKeyword:
		s.next()
		return &ast.KeyframesPrelude{Base: pp.base(), Name: &ast.LessVariable{Base: ast.Base{Sp: t.Span}, Name: strings.TrimPrefix(t.Text, "@")}}
	case t.IsDelim('~') && s.peekN(1).Kind == token.String && !s.peekN(1).SpaceBefore:
		s.next()
		str := s.next()
		return &ast.KeyframesPrelude{Base: pp.base(), Name: &ast.LessEscapedStr{Base: ast.Base{Sp: t.Span.Cover(str.Span)}, Str: strOf(str)}}
	}
	id, ok := s.interpolableIdent()
	if !ok {
		pp.fail(s.peek().Span, diag.SynExpectIdentifier, "expected a keyframes name")
		return nil
	}
	switch x := id.(type) {
	case *ast.Ident:
		return &ast.KeyframesPrelude{Base: pp.base(), Name: x}
	case *ast.InterpolatedIdent:
		return &ast.KeyframesPrelude{Base: pp.base(), Name: x}
	}
	return nil
}

func (pp *preludeParser) layer(s *stream) ast.Prelude {
	pr := &ast.LayerPrelude{Base: pp.base()}
	for _, seg := range pp.items(s, "layer name") {
		name := pp.layerName(seg)
		if name == nil {
			return nil
		}
		pr.Names = append(pr.Names, name)
	}
	if pp.bad {
		return nil
	}
	return pr
}

// layerName: ident ('.' ident)*, without whitespace.
func (pp *preludeParser) layerName(toks []token.Token) *ast.LayerName {
	name := &ast.LayerName{Base: ast.Base{Sp: cover(toks)}}
	for i, t := range toks {
		wantIdent := i%2 == 0
		switch {
		case i > 0 && t.SpaceBefore:
			pp.fail(t.Span, diag.SynUnexpectedToken, "whitespace inside layer name")
			return nil
		case wantIdent && t.Kind == token.Ident:
			name.Idents = append(name.Idents, identOf(t))
		case !wantIdent && t.IsDelim('.'):
		default:
			pp.fail(t.Span, diag.SynExpectIdentifier, "expected a layer name")
			return nil
		}
	}
	if len(toks) == 0 || len(toks)%2 == 0 {
		pp.fail(coverWith(pp.sp, toks), diag.SynExpectIdentifier, "expected a layer name")
		return nil
	}
	return name
}

func (pp *preludeParser) namespace(s *stream) ast.Prelude {
	pr := &ast.NamespacePrelude{Base: pp.base()}
	if t := s.peek(); t.Kind == token.Ident {
		pr.Prefix = identOf(s.next())
	}
	switch t := s.next(); t.Kind {
	case token.String:
		pr.URI = strOf(t)
	case token.URL:
		pr.URI = urlOf(t)
	default:
		pp.fail(t.Span, diag.SynExpectString, "expected a namespace string or url()")
		return nil
	}
	return pr
}

func (pp *preludeParser) nest(s *stream) ast.Prelude {
	toks := s.rest()
	s.i = len(s.toks)
	list := pp.p.selectorList(toks)
	if len(list.Selectors) == 0 {
		pp.bad = true
		return nil
	}
	return &ast.NestPrelude{Base: pp.base(), Selectors: list}
}

// page: [name][:pseudo]* separated by commas.
func (pp *preludeParser) page(s *stream) ast.Prelude {
	list := &ast.PageSelectorList{Base: pp.base()}
	for _, seg := range pp.items(s, "page selector") {
		sel := &ast.PageSelector{Base: ast.Base{Sp: cover(seg)}}
		i := 0
		if seg[0].Kind == token.Ident {
			sel.Name = identOf(seg[0])
			i = 1
		}
		for ; i < len(seg); i += 2 {
			if seg[i].Kind != token.Colon || i+1 >= len(seg) || seg[i+1].Kind != token.Ident {
				pp.fail(seg[i].Span, diag.SynExpectSelector, "expected :pseudo-page")
				return nil
			}
			sel.Pseudo = append(sel.Pseudo, &ast.PseudoPage{
				Base: ast.Base{Sp: seg[i].Span.Cover(seg[i+1].Span)},
				Name: identOf(seg[i+1]),
			})
		}
		list.Selectors = append(list.Selectors, sel)
	}
	if pp.bad {
		return nil
	}
	return &ast.PagePrelude{Base: pp.base(), Selectors: list}
}

func (pp *preludeParser) scrollTimeline(s *stream) ast.Prelude {
	id, ok := s.interpolableIdent()
	if !ok {
		pp.fail(s.peek().Span, diag.SynExpectIdentifier, "expected a timeline name")
		return nil
	}
	return &ast.ScrollTimelinePrelude{Base: pp.base(), Name: id}
}

func (pp *preludeParser) supports(s *stream) ast.Prelude {
	c := pp.condition(s)
	if c == nil {
		return nil
	}
	return &ast.SupportsPrelude{Base: pp.base(), Condition: c}
}

// items consumes the rest of s as a comma separated list; empty items are
// reported.
func (pp *preludeParser) items(s *stream, what string) [][]token.Token {
	rest := s.rest()
	s.i = len(s.toks)
	segs := splitTopLevel(rest)
	for _, seg := range segs {
		if len(seg) == 0 {
			pp.fail(pp.sp, diag.SynEmptyListItem, "empty "+what)
			return nil
		}
	}
	return segs
}
