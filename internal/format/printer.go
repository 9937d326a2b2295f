package format

import (
	"errors"
	"fmt"
	"reflect"

	"cssfmt/internal/ast"
	"cssfmt/internal/config"
	"cssfmt/internal/doc"
	"cssfmt/internal/source"
)

type printer struct {
	opt  config.Options
	file *source.File // optional; enables blank line preservation
	at   source.Span  // span of the innermost node with a known location
	err  *Error
}

func newPrinter(opt config.Options, file *source.File) *printer {
	return &printer{opt: opt, file: file}
}

// AtRule builds the document of a single at-rule.
func AtRule(rule *ast.AtRule, opt config.Options) (doc.Doc, error) {
	p := newPrinter(opt, nil)
	return p.result(p.atRule(rule))
}

// Prelude builds the document of an at-rule prelude.
func Prelude(pr ast.Prelude, opt config.Options) (doc.Doc, error) {
	p := newPrinter(opt, nil)
	return p.result(p.prelude(pr))
}

// Stylesheet builds the document of a whole file. sf may be nil; when set,
// single blank lines between statements are preserved.
func Stylesheet(sheet *ast.Stylesheet, sf *source.File, opt config.Options) (doc.Doc, error) {
	if sheet == nil {
		return doc.Nil, errors.New("format: nil stylesheet")
	}
	p := newPrinter(opt, sf)
	if len(sheet.Statements) == 0 {
		return doc.Nil, nil
	}
	return p.result(doc.Concat(p.statements(sheet.Statements), doc.HardLine()))
}

// PrintOptions derives renderer options from formatting options.
func PrintOptions(opt config.Options) doc.PrintOptions {
	return doc.PrintOptions{
		Width:       opt.PrintWidth,
		IndentWidth: opt.IndentWidth,
		UseTabs:     opt.UseTabs,
		Newline:     opt.Newline(),
	}
}

// FormatFile formats and renders a parsed file.
func FormatFile(sf *source.File, sheet *ast.Stylesheet, opt config.Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	d, err := Stylesheet(sheet, sf, opt)
	if err != nil {
		return nil, err
	}
	return []byte(doc.Render(d, PrintOptions(opt))), nil
}

func (p *printer) result(d doc.Doc) (doc.Doc, error) {
	if p.err != nil {
		return doc.Nil, p.err
	}
	return d, nil
}

// enter records the location of n for later error reports and returns the
// previous one for leave.
func (p *printer) enter(n ast.Node) source.Span {
	prev := p.at
	if isNil(n) {
		return prev
	}
	if sp := n.Span(); !sp.Empty() {
		p.at = sp
	}
	return prev
}

func (p *printer) leave(prev source.Span) {
	p.at = prev
}

func (p *printer) fail(kind ErrorKind, node, format string, args ...any) doc.Doc {
	if p.err == nil {
		p.err = &Error{Kind: kind, Node: node, Span: p.at, Msg: fmt.Sprintf(format, args...)}
	}
	return doc.Nil
}

func (p *printer) unsupported(node string, n any) doc.Doc {
	if n == nil || isNil(n) {
		return p.fail(ErrInvariant, node, "missing value")
	}
	return p.fail(ErrUnsupported, node, "no formatter for %T", n)
}

func (p *printer) missing(node string) doc.Doc {
	return p.fail(ErrInvariant, node, "missing value")
}

func (p *printer) empty(node string) doc.Doc {
	return p.fail(ErrInvariant, node, "list must have at least one element")
}

func (p *printer) indent(d doc.Doc) doc.Doc {
	return doc.Nest(p.opt.IndentWidth, d)
}

// listBreak is the separator break chosen by the block selector policy.
func (p *printer) listBreak() doc.Doc {
	switch p.opt.BlockSelectorLineBreak {
	case config.PolicyAlways:
		return doc.HardLine()
	case config.PolicyWrap:
		return doc.SoftLine()
	default:
		return doc.Line()
	}
}

// policyList joins items with "," and the policy break, grouped and indented.
func (p *printer) policyList(items []doc.Doc) doc.Doc {
	return p.indent(doc.Group(doc.Join(doc.Concat(doc.Text(","), p.listBreak()), items)))
}

// commaList joins items with "," and a line-or-space break, grouped and indented.
func (p *printer) commaList(items []doc.Doc) doc.Doc {
	return p.indent(doc.Group(doc.Join(doc.Concat(doc.Text(","), doc.Line()), items)))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
