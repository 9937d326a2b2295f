package format

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
	"cssfmt/internal/token"
)

func (p *printer) keyframeBlock(kb *ast.KeyframeBlock) doc.Doc {
	defer p.leave(p.enter(kb))
	if len(kb.Selectors) == 0 {
		return p.empty("keyframe selectors")
	}
	items := make([]doc.Doc, 0, len(kb.Selectors))
	for _, s := range kb.Selectors {
		items = append(items, p.keyframeSelector(s))
	}
	return doc.Concat(p.policyList(items), doc.Space(), p.block(kb.Block))
}

// keyframeSelector lower-cases the from/to keywords; everything else is
// printed as written.
func (p *printer) keyframeSelector(s ast.KeyframeSelector) doc.Doc {
	switch x := s.(type) {
	case *ast.Percentage:
		return p.percentage(x)
	case *ast.Ident:
		if x != nil {
			if kw, ok := keyframeKeyword(x.Name); ok {
				return doc.Text(kw)
			}
		}
		return p.ident(x)
	case *ast.InterpolatedIdent:
		if x != nil {
			if lit, ok := literalOnly(x); ok {
				if kw, ok := keyframeKeyword(lit); ok {
					return doc.Text(kw)
				}
			}
		}
		return p.interpolatedIdent(x)
	}
	return p.unsupported("keyframe selector", s)
}

func keyframeKeyword(name string) (string, bool) {
	switch {
	case token.EqualFold(name, "from"):
		return "from", true
	case token.EqualFold(name, "to"):
		return "to", true
	}
	return "", false
}

// literalOnly joins the parts of an interpolated identifier that holds no
// interpolation.
func literalOnly(id *ast.InterpolatedIdent) (string, bool) {
	s := ""
	for _, part := range id.Parts {
		if part.Expr != nil {
			return "", false
		}
		s += part.Literal
	}
	return s, true
}

func (p *printer) pageSelectorList(l *ast.PageSelectorList) doc.Doc {
	if l == nil {
		return p.missing("page selector list")
	}
	if len(l.Selectors) == 0 {
		return p.empty("page selector list")
	}
	items := make([]doc.Doc, 0, len(l.Selectors))
	for _, s := range l.Selectors {
		items = append(items, p.pageSelector(s))
	}
	return p.policyList(items)
}

// pageSelector: [name][:pseudo]*.
func (p *printer) pageSelector(s *ast.PageSelector) doc.Doc {
	if s == nil {
		return p.missing("page selector")
	}
	defer p.leave(p.enter(s))
	if s.Name == nil && len(s.Pseudo) == 0 {
		return p.fail(ErrInvariant, "page selector", "neither name nor pseudo-page")
	}
	parts := make([]doc.Doc, 0, 1+2*len(s.Pseudo))
	if s.Name != nil {
		parts = append(parts, p.ident(s.Name))
	}
	for _, pp := range s.Pseudo {
		if pp == nil {
			return p.missing("pseudo page")
		}
		parts = append(parts, doc.Text(":"), p.ident(pp.Name))
	}
	return doc.Concat(parts...)
}

func (p *printer) selectorList(l *ast.SelectorList) doc.Doc {
	if l == nil {
		return p.missing("selector list")
	}
	defer p.leave(p.enter(l))
	if len(l.Selectors) == 0 {
		return p.empty("selector list")
	}
	items := make([]doc.Doc, 0, len(l.Selectors))
	for _, s := range l.Selectors {
		if s == nil || s.Tokens == nil || len(s.Tokens.Tokens) == 0 {
			return p.missing("selector")
		}
		items = append(items, p.tokens(s.Tokens))
	}
	return p.policyList(items)
}
