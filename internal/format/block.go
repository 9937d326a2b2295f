package format

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
	"cssfmt/internal/source"
	"cssfmt/internal/token"
)

func (p *printer) block(b *ast.Block) doc.Doc {
	if b == nil {
		return p.missing("block")
	}
	if len(b.Statements) == 0 {
		return doc.Text("{}")
	}
	return doc.Concat(
		doc.Text("{"),
		p.indent(doc.Concat(doc.HardLine(), p.statements(b.Statements))),
		doc.HardLine(),
		doc.Text("}"),
	)
}

// statements separates statements with line breaks, keeping at most one
// blank line from the source.
func (p *printer) statements(stmts []ast.Statement) doc.Doc {
	parts := make([]doc.Doc, 0, len(stmts)*3)
	for i, s := range stmts {
		switch {
		case i == 0:
		case p.trailingComment(stmts[i-1], s):
			parts = append(parts, doc.Space())
		default:
			parts = append(parts, doc.HardLine())
			if p.blankLineBetween(stmts[i-1], s) {
				parts = append(parts, doc.HardLine())
			}
		}
		parts = append(parts, p.statement(s))
	}
	return doc.Concat(parts...)
}

// trailingComment: комментарий на той же строке, что и конец предыдущего
// оператора, остаётся на ней.
func (p *printer) trailingComment(a, b ast.Statement) bool {
	if _, ok := b.(*ast.Comment); !ok || p.file == nil || isNil(a) || isNil(b) {
		return false
	}
	start, end, ok := source.Between(a.Span(), b.Span())
	return ok && p.file.CountNewlines(start, end) == 0
}

func (p *printer) blankLineBetween(a, b ast.Statement) bool {
	if p.file == nil || isNil(a) || isNil(b) {
		return false
	}
	start, end, ok := source.Between(a.Span(), b.Span())
	if !ok {
		return false
	}
	return p.file.CountNewlines(start, end) >= 2
}

func (p *printer) statement(s ast.Statement) doc.Doc {
	if isNil(s) {
		return p.missing("statement")
	}
	defer p.leave(p.enter(s))
	switch x := s.(type) {
	case *ast.AtRule:
		if x.Block == nil {
			return doc.Concat(p.atRule(x), doc.Text(";"))
		}
		return p.atRule(x)
	case *ast.Declaration:
		return p.declaration(x)
	case *ast.QualifiedRule:
		return doc.Concat(p.selectorList(x.Selectors), doc.Space(), p.block(x.Block))
	case *ast.KeyframeBlock:
		return p.keyframeBlock(x)
	case *ast.Comment:
		return doc.Text(x.Text)
	}
	return p.unsupported("statement", s)
}

// declaration: "name: value[ !important];". Comments after the value move
// behind the ';' so that a "//" comment cannot swallow it.
func (p *printer) declaration(d *ast.Declaration) doc.Doc {
	if d.Name == "" {
		return p.missing("declaration name")
	}
	var value, trailing []token.Token
	if d.Value != nil {
		value = d.Value.Tokens
		for len(value) > 0 && value[len(value)-1].Kind == token.Comment {
			value = value[:len(value)-1]
		}
		trailing = d.Value.Tokens[len(value):]
	}
	parts := []doc.Doc{doc.Text(d.Name + ":")}
	if len(value) > 0 {
		parts = append(parts, doc.Space(), p.tokens(&ast.TokenSeq{Base: d.Value.Base, Tokens: value}))
	}
	if d.Important {
		parts = append(parts, doc.Space(), doc.Text("!important"))
	}
	parts = append(parts, doc.Text(";"))
	for _, c := range trailing {
		parts = append(parts, doc.Space(), doc.Text(c.Text))
	}
	return doc.Concat(parts...)
}
