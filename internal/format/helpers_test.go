package format

import (
	"testing"

	"cssfmt/internal/ast"
	"cssfmt/internal/config"
	"cssfmt/internal/diag"
	"cssfmt/internal/doc"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func str(raw string) *ast.Str { return &ast.Str{Raw: raw, Value: raw[1 : len(raw)-1]} }

func dashed(name string) *ast.DashedIdent { return &ast.DashedIdent{Name: name} }

func tok(kind token.Kind, text string, space bool) token.Token {
	return token.Token{Kind: kind, Text: text, SpaceBefore: space}
}

func seq(toks ...token.Token) *ast.TokenSeq { return &ast.TokenSeq{Tokens: toks} }

func feature(name, value string) *ast.Condition {
	return &ast.Condition{Terms: []ast.ConditionTerm{{
		Operand: &ast.Feature{Name: id(name), Value: seq(tok(token.Dimension, value, false))},
	}}}
}

func withPolicy(p config.LineBreakPolicy) config.Options {
	opt := config.Default()
	opt.BlockSelectorLineBreak = p
	return opt
}

// render строит документ прелюдии и раскладывает его на ширину width
func render(t *testing.T, pr ast.Prelude, opt config.Options, width int) string {
	t.Helper()
	d, err := Prelude(pr, opt)
	if err != nil {
		t.Fatalf("Prelude: %v", err)
	}
	po := PrintOptions(opt)
	po.Width = width
	return doc.Render(d, po)
}

// formatSource parses src and formats it with opt.
func formatSource(t *testing.T, src string, opt config.Options) (string, error) {
	t.Helper()
	return formatNamed(t, "test.scss", src, opt)
}

// formatNamed - formatSource для файла name; диалект по расширению.
func formatNamed(t *testing.T, name, src string, opt config.Options) (string, error) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual(name, []byte(src)))
	bag := diag.NewBag(50)
	sheet := parseOnce(sf, bag)
	if bag.HasErrors() {
		t.Fatalf("parse %q: %d diagnostics, first: %s", src, bag.Len(), bag.Items()[0].Message)
	}
	out, err := FormatFile(sf, sheet, opt)
	return string(out), err
}

func renderDoc(d doc.Doc) string {
	return doc.Render(d, PrintOptions(config.Default()))
}

func debugDoc(d doc.Doc) string {
	return doc.Debug(d)
}
