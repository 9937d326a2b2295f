package format

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
)

func (p *printer) mediaQueryList(l *ast.MediaQueryList) doc.Doc {
	if l == nil {
		return p.missing("media query list")
	}
	if len(l.Queries) == 0 {
		return p.empty("media query list")
	}
	items := make([]doc.Doc, 0, len(l.Queries))
	for _, q := range l.Queries {
		items = append(items, p.mediaQuery(q))
	}
	return p.commaList(items)
}

func (p *printer) mediaQuery(q ast.MediaQuery) doc.Doc {
	switch x := q.(type) {
	case *ast.MediaConditionQuery:
		if x == nil {
			break
		}
		return p.condition(x.Condition)
	case *ast.MediaTypeQuery:
		if x == nil {
			break
		}
		var parts []doc.Doc
		if x.Modifier != nil {
			parts = append(parts, p.ident(x.Modifier), doc.Space())
		}
		parts = append(parts, p.interpolableIdent(x.MediaType))
		if x.Condition != nil {
			and := doc.Text("and")
			if x.And != nil {
				and = p.ident(x.And)
			}
			parts = append(parts, doc.Space(), and, doc.Space(), p.condition(x.Condition))
		}
		return doc.Concat(parts...)
	}
	return p.unsupported("media query", q)
}

// condition joins terms with single spaces: "not (a)", "(a) and (b)".
func (p *printer) condition(c *ast.Condition) doc.Doc {
	if c == nil {
		return p.missing("condition")
	}
	if len(c.Terms) == 0 {
		return p.empty("condition")
	}
	parts := make([]doc.Doc, 0, len(c.Terms)*4)
	for i, t := range c.Terms {
		if i > 0 {
			parts = append(parts, doc.Space())
		}
		if t.Keyword != nil {
			parts = append(parts, p.ident(t.Keyword), doc.Space())
		}
		parts = append(parts, p.inParens(t.Operand))
	}
	return doc.Concat(parts...)
}

func (p *printer) inParens(n ast.InParens) doc.Doc {
	if isNil(n) {
		return p.missing("condition operand")
	}
	defer p.leave(p.enter(n))
	switch x := n.(type) {
	case *ast.ParenCondition:
		return doc.Concat(doc.Text("("), p.condition(x.Condition), doc.Text(")"))
	case *ast.Feature:
		return doc.Concat(doc.Text("("), p.featureBody(x), doc.Text(")"))
	case *ast.BooleanFeature:
		return doc.Concat(doc.Text("("), p.ident(x.Name), doc.Text(")"))
	case *ast.RangeFeature:
		if x.Tokens == nil || len(x.Tokens.Tokens) == 0 {
			return p.missing("range feature")
		}
		return doc.Concat(doc.Text("("), p.tokens(x.Tokens), doc.Text(")"))
	case *ast.FunctionQuery:
		return p.function(x.Function)
	}
	return p.unsupported("condition operand", n)
}

// featureBody is "name: value" without the parentheses.
func (p *printer) featureBody(f *ast.Feature) doc.Doc {
	if f.Value == nil || len(f.Value.Tokens) == 0 {
		return doc.Concat(p.ident(f.Name), doc.Text(":"))
	}
	return doc.Concat(p.ident(f.Name), doc.Text(":"), doc.Space(), p.tokens(f.Value))
}
