package parser

import (
	"testing"

	"cssfmt/internal/ast"
	"cssfmt/internal/token"
)

func TestPreludeVariants(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.PreludeKind
	}{
		{`@media screen and (min-width: 10px), print {}`, ast.PreludeMedia},
		{`@charset "utf-8";`, ast.PreludeCharset},
		{`@color-profile --swop5c {}`, ast.PreludeColorProfile},
		{`@color-profile device-cmyk {}`, ast.PreludeColorProfile},
		{`@container sidebar (min-width: 400px) {}`, ast.PreludeContainer},
		{`@counter-style thumbs {}`, ast.PreludeCounterStyle},
		{`@custom-media --small (max-width: 30em);`, ast.PreludeCustomMedia},
		{`@-moz-document url-prefix("http://a"), url(http://b) {}`, ast.PreludeDocument},
		{`@font-feature-values Font One, "Font Two" {}`, ast.PreludeFontFeatureValues},
		{`@font-palette-values --identifier {}`, ast.PreludeFontPaletteValues},
		{`@import url("a.css") layer(base) supports(display: grid) screen;`, ast.PreludeImport},
		{`@-webkit-keyframes slide {}`, ast.PreludeKeyframes},
		{`@layer reset, base.forms;`, ast.PreludeLayer},
		{`@namespace svg url(http://www.w3.org/2000/svg);`, ast.PreludeNamespace},
		{`@nest .parent &, .x {}`, ast.PreludeNest},
		{`@page :first, wide:left {}`, ast.PreludePage},
		{`@position-fallback --button-popup {}`, ast.PreludePositionFallback},
		{`@property --my-color {}`, ast.PreludeProperty},
		{`@include button($size, $color);`, ast.PreludeVendorExpr},
		{`@scroll-timeline progress {}`, ast.PreludeScrollTimeline},
		{`@supports not (display: grid) {}`, ast.PreludeSupports},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			r := firstAtRule(t, tt.src)
			if r.Prelude == nil {
				t.Fatalf("%q: no prelude", tt.src)
			}
			if got := r.Prelude.Kind(); got != tt.kind {
				t.Fatalf("%q: kind = %s, want %s", tt.src, got, tt.kind)
			}
		})
	}
}

func TestUnknownAtRuleKeepsTokens(t *testing.T) {
	r := firstAtRule(t, `@tailwind base;`)
	u, ok := r.Prelude.(*ast.UnknownPrelude)
	if !ok {
		t.Fatalf("prelude = %T, want *ast.UnknownPrelude", r.Prelude)
	}
	if u.Name != "tailwind" || len(u.Tokens.Tokens) != 1 {
		t.Fatalf("unknown prelude = %+v", u)
	}
}

func TestAtRuleWithoutPrelude(t *testing.T) {
	r := firstAtRule(t, `@font-face { font-family: X; }`)
	if r.Prelude != nil {
		t.Fatalf("prelude = %T, want nil", r.Prelude)
	}
	if r.Block == nil || len(r.Block.Statements) != 1 {
		t.Fatalf("block = %+v", r.Block)
	}
}

func TestMediaQueryShapes(t *testing.T) {
	r := firstAtRule(t, `@media only screen and (min-width: 10px), (400px <= width), not print {}`)
	list := r.Prelude.(*ast.MediaPrelude).Queries
	if len(list.Queries) != 3 {
		t.Fatalf("queries = %d, want 3", len(list.Queries))
	}
	typed, ok := list.Queries[0].(*ast.MediaTypeQuery)
	if !ok || typed.Modifier == nil || typed.Modifier.Name != "only" || typed.Condition == nil {
		t.Fatalf("query 0 = %+v", list.Queries[0])
	}
	feat, ok := typed.Condition.Terms[0].Operand.(*ast.Feature)
	if !ok || feat.Name.Name != "min-width" || feat.Value.Tokens[0].Text != "10px" {
		t.Fatalf("feature = %+v", typed.Condition.Terms[0].Operand)
	}
	cq, ok := list.Queries[1].(*ast.MediaConditionQuery)
	if !ok {
		t.Fatalf("query 1 = %T", list.Queries[1])
	}
	if _, ok := cq.Condition.Terms[0].Operand.(*ast.RangeFeature); !ok {
		t.Fatalf("operand = %T, want range feature", cq.Condition.Terms[0].Operand)
	}
	if q, ok := list.Queries[2].(*ast.MediaTypeQuery); !ok || q.Modifier == nil || q.Condition != nil {
		t.Fatalf("query 2 = %+v", list.Queries[2])
	}
}

func TestSupportsCondition(t *testing.T) {
	r := firstAtRule(t, `@supports (display: grid) and (not (display: inline-grid)) or selector(a > b) {}`)
	c := r.Prelude.(*ast.SupportsPrelude).Condition
	if len(c.Terms) != 3 {
		t.Fatalf("terms = %d, want 3", len(c.Terms))
	}
	if c.Terms[1].Keyword == nil || c.Terms[1].Keyword.Name != "and" {
		t.Fatalf("term 1 keyword = %+v", c.Terms[1].Keyword)
	}
	if _, ok := c.Terms[1].Operand.(*ast.ParenCondition); !ok {
		t.Fatalf("term 1 = %T, want paren condition", c.Terms[1].Operand)
	}
	fq, ok := c.Terms[2].Operand.(*ast.FunctionQuery)
	if !ok || fq.Function.Name != "selector" {
		t.Fatalf("term 2 = %+v", c.Terms[2].Operand)
	}
}

func TestImportParts(t *testing.T) {
	r := firstAtRule(t, `@import "theme.css" layer supports(not (display: grid)) screen, print;`)
	imp := r.Prelude.(*ast.ImportPrelude)
	if s, ok := imp.Href.(*ast.Str); !ok || s.Value != "theme.css" {
		t.Fatalf("href = %+v", imp.Href)
	}
	if imp.Layer == nil || imp.Layer.Name != nil {
		t.Fatalf("layer = %+v", imp.Layer)
	}
	if imp.Supports == nil || imp.Supports.Condition == nil || imp.Supports.Decl != nil {
		t.Fatalf("supports = %+v", imp.Supports)
	}
	if imp.Media == nil || len(imp.Media.Queries) != 2 {
		t.Fatalf("media = %+v", imp.Media)
	}
}

func TestLayerNames(t *testing.T) {
	r := firstAtRule(t, `@layer a.b.c, d;`)
	names := r.Prelude.(*ast.LayerPrelude).Names
	if len(names) != 2 || len(names[0].Idents) != 3 || names[0].Idents[2].Name != "c" {
		t.Fatalf("names = %+v", names)
	}
}

func TestLayerNameRejectsSpaces(t *testing.T) {
	_, bag := parseSource(t, `@layer a. b;`)
	if !bag.HasErrors() {
		t.Fatalf("expected an error for a spaced layer name")
	}
}

func TestNamespaceWithoutPrefix(t *testing.T) {
	r := firstAtRule(t, `@namespace "http://x";`)
	ns := r.Prelude.(*ast.NamespacePrelude)
	if ns.Prefix != nil {
		t.Fatalf("prefix = %+v, want nil", ns.Prefix)
	}
	if _, ok := ns.URI.(*ast.Str); !ok {
		t.Fatalf("uri = %T", ns.URI)
	}
}

func TestPageSelectors(t *testing.T) {
	r := firstAtRule(t, `@page :first, wide:left:blank {}`)
	sels := r.Prelude.(*ast.PagePrelude).Selectors.Selectors
	if len(sels) != 2 {
		t.Fatalf("selectors = %d", len(sels))
	}
	if sels[0].Name != nil || len(sels[0].Pseudo) != 1 || sels[0].Pseudo[0].Name.Name != "first" {
		t.Fatalf("selector 0 = %+v", sels[0])
	}
	if sels[1].Name == nil || sels[1].Name.Name != "wide" || len(sels[1].Pseudo) != 2 {
		t.Fatalf("selector 1 = %+v", sels[1])
	}
}

func TestCustomMediaBool(t *testing.T) {
	r := firstAtRule(t, `@custom-media --enabled true;`)
	cm := r.Prelude.(*ast.CustomMediaPrelude)
	if cm.Name.Name != "enabled" {
		t.Fatalf("name = %q", cm.Name.Name)
	}
	if b, ok := cm.Value.(*ast.CustomMediaBool); !ok || !b.Value {
		t.Fatalf("value = %+v", cm.Value)
	}
}

func TestFontFeatureValuesNames(t *testing.T) {
	r := firstAtRule(t, `@font-feature-values Times New Roman, "Font Two" {}`)
	names := r.Prelude.(*ast.FontFeatureValuesPrelude).Names
	u, ok := names[0].(*ast.UnquotedFontFamilyName)
	if !ok || len(u.Idents) != 3 {
		t.Fatalf("name 0 = %+v", names[0])
	}
	if _, ok := names[1].(*ast.Str); !ok {
		t.Fatalf("name 1 = %T", names[1])
	}
}

func TestKeyframesInterpolatedName(t *testing.T) {
	r := firstAtRule(t, `@keyframes slide-#{$dir} {}`)
	name, ok := r.Prelude.(*ast.KeyframesPrelude).Name.(*ast.InterpolatedIdent)
	if !ok || len(name.Parts) != 2 {
		t.Fatalf("name = %+v", r.Prelude.(*ast.KeyframesPrelude).Name)
	}
	if name.Parts[0].Literal != "slide-" || name.Parts[1].Expr == nil {
		t.Fatalf("parts = %+v", name.Parts)
	}
	if got := name.Parts[1].Expr.Tokens; len(got) != 2 || !got[0].IsDelim('$') || got[1].Kind != token.Ident {
		t.Fatalf("expr = %+v", got)
	}
}

func TestBadPreludeIsReported(t *testing.T) {
	tests := []string{
		`@charset utf-8;`,
		`@media screen (min-width: 1px) {}`,
		`@property my-color {}`,
		`@page first: {}`,
		`@namespace svg;`,
	}
	for _, src := range tests {
		sheet, bag := parseSource(t, src)
		if !bag.HasErrors() {
			t.Errorf("%q: expected a diagnostic", src)
			continue
		}
		r := sheet.Statements[0].(*ast.AtRule)
		if _, ok := r.Prelude.(*ast.UnknownPrelude); !ok {
			t.Errorf("%q: prelude = %T, want *ast.UnknownPrelude", src, r.Prelude)
		}
	}
}

func TestLessKeyframesNames(t *testing.T) {
	sheet, bag := parseNamed(t, "anim.less", "@keyframes @name {}\n@keyframes ~\"fade\" {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	v, ok := sheet.Statements[0].(*ast.AtRule).Prelude.(*ast.KeyframesPrelude).Name.(*ast.LessVariable)
	if !ok || v.Name != "name" {
		t.Fatalf("name 0 = %+v", sheet.Statements[0].(*ast.AtRule).Prelude)
	}
	e, ok := sheet.Statements[1].(*ast.AtRule).Prelude.(*ast.KeyframesPrelude).Name.(*ast.LessEscapedStr)
	if !ok || e.Str.Raw != `"fade"` || e.Str.Value != "fade" {
		t.Fatalf("name 1 = %+v", sheet.Statements[1].(*ast.AtRule).Prelude)
	}
	if e.Span().End-e.Span().Start != uint32(len(`~"fade"`)) {
		t.Fatalf("escaped span = %v", e.Span())
	}
}

func TestCommentedPreludeKeepsTokens(t *testing.T) {
	tests := []struct {
		src    string
		tokens int
	}{
		{"@media screen /* keep */ and (color) {}", 6},
		{"@media screen and (color) // keep\n{}", 6},
		{"@supports /* a */ (display: grid) {}", 6},
	}
	for _, tt := range tests {
		r := firstAtRule(t, tt.src)
		u, ok := r.Prelude.(*ast.UnknownPrelude)
		if !ok {
			t.Errorf("%q: prelude = %T, want *ast.UnknownPrelude", tt.src, r.Prelude)
			continue
		}
		if len(u.Tokens.Tokens) != tt.tokens {
			t.Errorf("%q: %d tokens, want %d", tt.src, len(u.Tokens.Tokens), tt.tokens)
		}
	}

	// у директив Sass комментарии остаются в выражении
	r := firstAtRule(t, "@include button /* primary */;")
	if x, ok := r.Prelude.(*ast.VendorExprPrelude); !ok || len(x.Expr.Tokens) != 2 {
		t.Fatalf("prelude = %+v", r.Prelude)
	}
}
