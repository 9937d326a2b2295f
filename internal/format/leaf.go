package format

import (
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
	"cssfmt/internal/token"
)

func (p *printer) ident(id *ast.Ident) doc.Doc {
	if id == nil || id.Name == "" {
		return p.missing("identifier")
	}
	return doc.Text(id.Name)
}

func (p *printer) idents(ids []*ast.Ident) []doc.Doc {
	out := make([]doc.Doc, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.ident(id))
	}
	return out
}

func (p *printer) dashedIdent(id *ast.DashedIdent) doc.Doc {
	if id == nil || id.Name == "" {
		return p.missing("dashed identifier")
	}
	return doc.Text("--" + id.Name)
}

func (p *printer) interpolableIdent(n ast.InterpolableIdent) doc.Doc {
	switch x := n.(type) {
	case *ast.Ident:
		return p.ident(x)
	case *ast.InterpolatedIdent:
		return p.interpolatedIdent(x)
	}
	return p.unsupported("identifier", n)
}

func (p *printer) interpolatedIdent(id *ast.InterpolatedIdent) doc.Doc {
	if id == nil || len(id.Parts) == 0 {
		return p.missing("interpolated identifier")
	}
	var sb strings.Builder
	for _, part := range id.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		sb.WriteString("#{")
		sb.WriteString(tokenText(part.Expr))
		sb.WriteString("}")
	}
	return doc.Text(sb.String())
}

func (p *printer) str(s *ast.Str) doc.Doc {
	if s == nil || s.Raw == "" {
		return p.missing("string")
	}
	return doc.Text(s.Raw)
}

func (p *printer) percentage(pc *ast.Percentage) doc.Doc {
	if pc == nil || pc.Raw == "" {
		return p.missing("percentage")
	}
	return doc.Text(pc.Raw)
}

func (p *printer) url(u *ast.Url) doc.Doc {
	if u == nil {
		return p.missing("url")
	}
	name := u.Name
	if name == "" {
		name = "url"
	}
	if u.Value != nil {
		return doc.Concat(doc.Text(name+"("), p.str(u.Value), doc.Text(")"))
	}
	return doc.Text(name + "(" + u.Raw + ")")
}

func (p *printer) function(f *ast.Function) doc.Doc {
	if f == nil || f.Name == "" {
		return p.missing("function")
	}
	return doc.Text(f.Name + "(" + tokenText(f.Args) + ")")
}

func (p *printer) layerName(n *ast.LayerName) doc.Doc {
	if n == nil {
		return p.missing("layer name")
	}
	if len(n.Idents) == 0 {
		return p.empty("layer name")
	}
	return doc.Join(doc.Text("."), p.idents(n.Idents))
}

// tokens prints a component value run. A "//" comment ends its line, so
// the rest of the run continues on the next, indented one.
func (p *printer) tokens(seq *ast.TokenSeq) doc.Doc {
	if seq == nil || !hasLineComment(seq.Tokens) {
		return doc.Text(tokenText(seq))
	}
	var parts []doc.Doc
	rest := seq.Tokens
	for len(rest) > 0 {
		n := len(rest)
		for i, t := range rest {
			if t.IsLineComment() {
				n = i + 1
				break
			}
		}
		if len(parts) > 0 {
			parts = append(parts, doc.HardLine())
		}
		parts = append(parts, doc.Text(tokenText(&ast.TokenSeq{Tokens: rest[:n]})))
		rest = rest[n:]
	}
	if seq.Tokens[len(seq.Tokens)-1].IsLineComment() {
		parts = append(parts, doc.HardLine())
	}
	return p.indent(doc.Concat(parts...))
}

func hasLineComment(toks []token.Token) bool {
	for _, t := range toks {
		if t.IsLineComment() {
			return true
		}
	}
	return false
}

func hasComment(seq *ast.TokenSeq) bool {
	if seq == nil {
		return false
	}
	for _, t := range seq.Tokens {
		if t.Kind == token.Comment {
			return true
		}
	}
	return false
}

// tokenText prints component values with whitespace collapsed to single
// spaces. Commas are followed by one space and never preceded by one.
func tokenText(seq *ast.TokenSeq) string {
	if seq == nil {
		return ""
	}
	var sb strings.Builder
	var prev *token.Token
	for i := range seq.Tokens {
		t := &seq.Tokens[i]
		if prev != nil && spaceBetween(prev, t) {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
		prev = t
	}
	return sb.String()
}

func spaceBetween(prev, t *token.Token) bool {
	switch {
	case t.Kind == token.Comma || t.Kind == token.Semicolon:
		return false
	case prev.Kind == token.Comma:
		return true
	case t.Kind == token.RParen || t.Kind == token.RBracket:
		return false
	case prev.Kind == token.Function || prev.Kind == token.LParen || prev.Kind == token.LBracket:
		return false
	}
	return t.SpaceBefore
}
