package format

import (
	"cssfmt/internal/ast"
	"cssfmt/internal/doc"
)

func (p *printer) colorProfileName(n ast.ColorProfileName) doc.Doc {
	switch x := n.(type) {
	case *ast.DashedIdent:
		return p.dashedIdent(x)
	case *ast.DeviceCmyk:
		if x == nil {
			return p.missing("color profile name")
		}
		return doc.Text(x.Raw)
	}
	return p.unsupported("color profile name", n)
}

func (p *printer) customMediaValue(v ast.CustomMediaValue) doc.Doc {
	switch x := v.(type) {
	case *ast.MediaQueryList:
		return p.mediaQueryList(x)
	case *ast.CustomMediaBool:
		if x == nil {
			return p.missing("custom media value")
		}
		if x.Value {
			return doc.Text("true")
		}
		return doc.Text("false")
	}
	return p.unsupported("custom media value", v)
}

func (p *printer) documentPrelude(x *ast.DocumentPrelude) doc.Doc {
	if len(x.Matchers) == 0 {
		return p.empty("document prelude")
	}
	items := make([]doc.Doc, 0, len(x.Matchers))
	for _, m := range x.Matchers {
		items = append(items, p.documentMatcher(m))
	}
	return p.policyList(items)
}

func (p *printer) documentMatcher(m ast.DocumentMatcher) doc.Doc {
	switch x := m.(type) {
	case *ast.Function:
		return p.function(x)
	case *ast.Url:
		return p.url(x)
	}
	return p.unsupported("document matcher", m)
}

func (p *printer) fontFeatureValues(x *ast.FontFeatureValuesPrelude) doc.Doc {
	if len(x.Names) == 0 {
		return p.empty("font feature values prelude")
	}
	items := make([]doc.Doc, 0, len(x.Names))
	for _, n := range x.Names {
		items = append(items, p.fontFamilyName(n))
	}
	return doc.Join(doc.Concat(doc.Text(","), doc.Space()), items)
}

func (p *printer) fontFamilyName(n ast.FontFamilyName) doc.Doc {
	switch x := n.(type) {
	case *ast.Str:
		return p.str(x)
	case *ast.UnquotedFontFamilyName:
		if x == nil {
			return p.missing("font family name")
		}
		if len(x.Idents) == 0 {
			return p.empty("font family name")
		}
		return doc.Join(doc.Space(), p.idents(x.Idents))
	}
	return p.unsupported("font family name", n)
}

// importPrelude: href[ layer[(name)]][ supports(...)][ media]. Parts after
// the href may move to indented continuation lines.
func (p *printer) importPrelude(x *ast.ImportPrelude) doc.Doc {
	var href doc.Doc
	switch h := x.Href.(type) {
	case *ast.Str:
		href = p.str(h)
	case *ast.Url:
		href = p.url(h)
	default:
		href = p.unsupported("import href", x.Href)
	}

	var tail []doc.Doc
	if x.Layer != nil {
		kw := x.Layer.Keyword
		if kw == "" {
			kw = "layer"
		}
		if x.Layer.Name == nil {
			tail = append(tail, doc.Text(kw))
		} else {
			tail = append(tail, doc.Concat(doc.Text(kw+"("), p.layerName(x.Layer.Name), doc.Text(")")))
		}
	}
	if s := x.Supports; s != nil {
		kw := s.Keyword
		if kw == "" {
			kw = "supports"
		}
		var inner doc.Doc
		switch {
		case s.Decl != nil:
			inner = p.featureBody(s.Decl)
		case s.Condition != nil:
			inner = p.condition(s.Condition)
		default:
			inner = p.missing("import supports")
		}
		tail = append(tail, doc.Concat(doc.Text(kw+"("), inner, doc.Text(")")))
	}
	if x.Media != nil {
		tail = append(tail, p.mediaQueryList(x.Media))
	}
	if len(tail) == 0 {
		return href
	}
	return p.indent(doc.Group(doc.Concat(href, doc.Line(), doc.Join(doc.Line(), tail))))
}

func (p *printer) keyframesName(n ast.KeyframesName) doc.Doc {
	switch x := n.(type) {
	case *ast.Str:
		return p.str(x)
	case *ast.Ident:
		return p.ident(x)
	case *ast.InterpolatedIdent:
		return p.interpolatedIdent(x)
	case *ast.LessVariable:
		if x == nil || x.Name == "" {
			return p.missing("less variable")
		}
		return doc.Text("@" + x.Name)
	case *ast.LessEscapedStr:
		if x == nil {
			return p.missing("escaped string")
		}
		return doc.Concat(doc.Text("~"), p.str(x.Str))
	}
	return p.unsupported("keyframes name", n)
}

func (p *printer) layerPrelude(x *ast.LayerPrelude) doc.Doc {
	if len(x.Names) == 0 {
		return p.empty("layer prelude")
	}
	items := make([]doc.Doc, 0, len(x.Names))
	for _, n := range x.Names {
		items = append(items, p.layerName(n))
	}
	return p.commaList(items)
}

// namespacePrelude: "prefix uri", the uri going to an indented line when
// the pair does not fit.
func (p *printer) namespacePrelude(x *ast.NamespacePrelude) doc.Doc {
	var uri doc.Doc
	switch u := x.URI.(type) {
	case *ast.Str:
		uri = p.str(u)
	case *ast.Url:
		uri = p.url(u)
	default:
		uri = p.unsupported("namespace uri", x.URI)
	}
	if x.Prefix == nil {
		return uri
	}
	return p.indent(doc.Group(doc.Concat(p.ident(x.Prefix), doc.Line(), uri)))
}
