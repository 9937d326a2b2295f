package format

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
	"cssfmt/internal/token"
)

// atRule: "@name[ prelude][ block]". Grouping is left to the parts.
func (p *printer) atRule(rule *ast.AtRule) doc.Doc {
	if rule == nil {
		return p.missing("at-rule")
	}
	defer p.leave(p.enter(rule))
	if rule.Name == nil || rule.Name.Name == "" {
		return p.missing("at-rule name")
	}
	parts := []doc.Doc{doc.Text("@" + token.ToLowerASCII(rule.Name.Name))}
	if rule.Prelude != nil {
		parts = append(parts, doc.Space(), p.prelude(rule.Prelude))
	}
	if rule.Block != nil {
		parts = append(parts, doc.Space(), p.block(rule.Block))
	}
	return doc.Concat(parts...)
}

func (p *printer) prelude(pr ast.Prelude) doc.Doc {
	if isNil(pr) {
		return p.fail(ErrUnsupported, "at-rule prelude", "no prelude variant")
	}
	defer p.leave(p.enter(pr))
	switch x := pr.(type) {
	case *ast.MediaPrelude:
		return p.mediaQueryList(x.Queries)
	case *ast.CharsetPrelude:
		return p.str(x.Charset)
	case *ast.ColorProfilePrelude:
		return p.colorProfileName(x.Name)
	case *ast.ContainerPrelude:
		if x.Name == nil {
			return p.condition(x.Condition)
		}
		return doc.Concat(p.ident(x.Name), doc.Space(), p.condition(x.Condition))
	case *ast.CounterStylePrelude:
		return p.interpolableIdent(x.Name)
	case *ast.CustomMediaPrelude:
		return doc.Concat(p.dashedIdent(x.Name), doc.Space(), p.customMediaValue(x.Value))
	case *ast.DocumentPrelude:
		return p.documentPrelude(x)
	case *ast.FontFeatureValuesPrelude:
		return p.fontFeatureValues(x)
	case *ast.FontPaletteValuesPrelude:
		return p.dashedIdent(x.Name)
	case *ast.ImportPrelude:
		return p.importPrelude(x)
	case *ast.KeyframesPrelude:
		return p.keyframesName(x.Name)
	case *ast.LayerPrelude:
		return p.layerPrelude(x)
	case *ast.NamespacePrelude:
		return p.namespacePrelude(x)
	case *ast.NestPrelude:
		return p.selectorList(x.Selectors)
	case *ast.PagePrelude:
		return p.pageSelectorList(x.Selectors)
	case *ast.PositionFallbackPrelude:
		return p.dashedIdent(x.Name)
	case *ast.PropertyPrelude:
		return p.dashedIdent(x.Name)
	case *ast.VendorExprPrelude:
		if x.Expr == nil || len(x.Expr.Tokens) == 0 {
			return p.missing("preprocessor expression")
		}
		return p.tokens(x.Expr)
	case *ast.ScrollTimelinePrelude:
		return p.interpolableIdent(x.Name)
	case *ast.SupportsPrelude:
		return p.condition(x.Condition)
	case *ast.UnknownPrelude:
		if hasComment(x.Tokens) {
			return p.fail(ErrUnsupported, "at-rule prelude", "comments inside the @%s prelude are not supported", x.Name)
		}
		return p.fail(ErrUnsupported, "at-rule prelude", "@%s is not a known at-rule", x.Name)
	default:
		return p.unsupported("at-rule prelude", pr)
	}
}
