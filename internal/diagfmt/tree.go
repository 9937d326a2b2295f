package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cssfmt/internal/ast"
	"cssfmt/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) {
	n.children = append(n.children, children...)
}

type treeBuilder struct {
	fs   *source.FileSet
	file *source.File
}

// FormatASTTree печатает дерево разбора в виде
//
//	Stylesheet a.css (span: 1:1-4:2)
//	└─ AtRule @media (span: 1:1-4:2)
//	   ├─ Prelude[media]: screen and (min-width: 1px)
//	   │  └─ Query: screen and (min-width: 1px)
//	   └─ Block
//	      └─ ...
func FormatASTTree(w io.Writer, sheet *ast.Stylesheet, fs *source.FileSet) error {
	if sheet == nil {
		_, err := fmt.Fprintln(w, "Stylesheet: <nil>")
		return err
	}
	b := treeBuilder{fs: fs, file: fs.Get(sheet.Span().File)}
	header := "Stylesheet"
	if b.file != nil {
		header = fmt.Sprintf("Stylesheet %s", b.file.FormatPath("auto", fs.BaseDir()))
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, b.span(sheet.Span()))}
	for _, st := range sheet.Statements {
		root.add(b.statement(st))
	}

	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		branch, next := "├─ ", "│  "
		if i == len(n.children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(c.label)
		sb.WriteByte('\n')
		writeChildren(sb, c, prefix+next)
	}
}

func (b *treeBuilder) span(sp source.Span) string {
	start, end := b.fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// text возвращает исходный текст узла, схлопывая пробельные последовательности.
func (b *treeBuilder) text(n ast.Node) string {
	if n == nil || b.file == nil {
		return "<nil>"
	}
	sp := n.Span()
	if int(sp.End) > len(b.file.Content) || sp.Start > sp.End {
		return "<?>"
	}
	return strings.Join(strings.Fields(string(b.file.Content[sp.Start:sp.End])), " ")
}

func (b *treeBuilder) statement(st ast.Statement) *treeNode {
	switch s := st.(type) {
	case *ast.AtRule:
		name := "<nil>"
		if s.Name != nil {
			name = s.Name.Name
		}
		node := &treeNode{label: fmt.Sprintf("AtRule @%s (span: %s)", name, b.span(s.Span()))}
		if s.Prelude != nil {
			node.add(b.prelude(s.Prelude))
		}
		if s.Block != nil {
			node.add(b.block(s.Block))
		}
		return node
	case *ast.QualifiedRule:
		node := &treeNode{label: fmt.Sprintf("Rule (span: %s)", b.span(s.Span()))}
		if s.Selectors != nil {
			node.add(b.selectors(s.Selectors))
		}
		if s.Block != nil {
			node.add(b.block(s.Block))
		}
		return node
	case *ast.KeyframeBlock:
		sels := make([]string, 0, len(s.Selectors))
		for _, sel := range s.Selectors {
			sels = append(sels, b.text(sel))
		}
		node := &treeNode{label: fmt.Sprintf("KeyframeBlock %s (span: %s)", strings.Join(sels, ", "), b.span(s.Span()))}
		if s.Block != nil {
			node.add(b.block(s.Block))
		}
		return node
	case *ast.Declaration:
		label := fmt.Sprintf("Declaration %s:", s.Name)
		if s.Value != nil {
			label += " " + b.text(s.Value)
		}
		if s.Important {
			label += " !important"
		}
		return &treeNode{label: label}
	case *ast.Comment:
		return &treeNode{label: "Comment " + s.Text}
	default:
		return &treeNode{label: fmt.Sprintf("<unknown statement %T>", st)}
	}
}

func (b *treeBuilder) block(bl *ast.Block) *treeNode {
	node := &treeNode{label: "Block"}
	for _, st := range bl.Statements {
		node.add(b.statement(st))
	}
	return node
}

func (b *treeBuilder) selectors(list *ast.SelectorList) *treeNode {
	node := &treeNode{label: "Selectors"}
	for _, sel := range list.Selectors {
		node.add(&treeNode{label: b.text(sel)})
	}
	return node
}

func (b *treeBuilder) prelude(pr ast.Prelude) *treeNode {
	node := &treeNode{label: fmt.Sprintf("Prelude[%s]: %s", pr.Kind(), b.text(pr))}
	switch p := pr.(type) {
	case *ast.MediaPrelude:
		b.queries(node, p.Queries)
	case *ast.CustomMediaPrelude:
		if q, ok := p.Value.(*ast.MediaQueryList); ok {
			b.queries(node, q)
		}
	case *ast.ImportPrelude:
		node.add(&treeNode{label: "Href: " + b.text(p.Href)})
		if p.Layer != nil {
			node.add(&treeNode{label: "Layer: " + b.text(p.Layer)})
		}
		if p.Supports != nil {
			node.add(&treeNode{label: "Supports: " + b.text(p.Supports)})
		}
		if p.Media != nil {
			b.queries(node, p.Media)
		}
	case *ast.LayerPrelude:
		for _, n := range p.Names {
			node.add(&treeNode{label: "Layer: " + b.text(n)})
		}
	case *ast.DocumentPrelude:
		for _, m := range p.Matchers {
			node.add(&treeNode{label: "Matcher: " + b.text(m)})
		}
	case *ast.FontFeatureValuesPrelude:
		for _, n := range p.Names {
			node.add(&treeNode{label: "Family: " + b.text(n)})
		}
	case *ast.PagePrelude:
		if p.Selectors != nil {
			for _, s := range p.Selectors.Selectors {
				node.add(&treeNode{label: "Page: " + b.text(s)})
			}
		}
	case *ast.NestPrelude:
		if p.Selectors != nil {
			node.add(b.selectors(p.Selectors))
		}
	case *ast.KeyframesPrelude:
		if p.Name != nil {
			node.add(&treeNode{label: fmt.Sprintf("Name[%s]: %s", keyframesNameKind(p.Name), b.text(p.Name))})
		}
	case *ast.ContainerPrelude:
		if p.Name != nil {
			node.add(&treeNode{label: "Name: " + p.Name.Name})
		}
		if p.Condition != nil {
			node.add(&treeNode{label: "Condition: " + b.text(p.Condition)})
		}
	}
	return node
}

func keyframesNameKind(n ast.KeyframesName) string {
	switch n.(type) {
	case *ast.Str:
		return "string"
	case *ast.InterpolatedIdent:
		return "interpolated"
	case *ast.LessVariable:
		return "less-variable"
	case *ast.LessEscapedStr:
		return "less-escaped"
	default:
		return "ident"
	}
}

func (b *treeBuilder) queries(node *treeNode, list *ast.MediaQueryList) {
	if list == nil {
		return
	}
	for _, q := range list.Queries {
		node.add(&treeNode{label: "Query: " + b.text(q)})
	}
}
