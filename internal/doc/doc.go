// Package doc is the document model produced by formatters and the renderer
// that lays it out as text.
//
// A Doc is an immutable tree of text, line breaks, groups and indentation.
// Formatters only describe where lines may break; Render decides, per group,
// whether the content fits in the configured width.
//
// Break flavors:
//   - HardLine always breaks and forces every enclosing group to break.
//   - Line breaks together with the other Lines of its group, otherwise it is a space.
//   - SoftLine is decided per occurrence: a space while the following item
//     still fits on the current line, a line break otherwise.
package doc

// Doc is a layout instruction tree.
type Doc interface {
	isDoc()
}

type lineKind uint8

const (
	lineHard lineKind = iota
	lineOrSpace
	lineSoft
)

type (
	nilDoc  struct{}
	textDoc string
	lineDoc struct {
		kind lineKind
	}
	concatDoc struct {
		parts []Doc
		hard  bool
	}
	nestDoc struct {
		indent int
		doc    Doc
		hard   bool
	}
	groupDoc struct {
		doc  Doc
		hard bool // содержит HardLine - группа всегда ломается
	}
)

func (nilDoc) isDoc()    {}
func (textDoc) isDoc()   {}
func (lineDoc) isDoc()   {}
func (concatDoc) isDoc() {}
func (nestDoc) isDoc()   {}
func (*groupDoc) isDoc() {}

// Nil is the empty document.
var Nil Doc = nilDoc{}

// Text is literal text. It must not contain line breaks unless the text is
// verbatim content (comments) whose layout is not negotiable.
func Text(s string) Doc {
	if s == "" {
		return Nil
	}
	return textDoc(s)
}

// Space is a mandatory single space.
func Space() Doc { return textDoc(" ") }

// HardLine is an unconditional line break.
func HardLine() Doc { return lineDoc{kind: lineHard} }

// Line is a line break or a space, decided once for the enclosing group.
func Line() Doc { return lineDoc{kind: lineOrSpace} }

// SoftLine is a line break or a space, decided for this occurrence only.
func SoftLine() Doc { return lineDoc{kind: lineSoft} }

// Concat sequences documents in order.
func Concat(parts ...Doc) Doc {
	kept := make([]Doc, 0, len(parts))
	hard := false
	for _, p := range parts {
		if p == nil {
			continue
		}
		if _, ok := p.(nilDoc); ok {
			continue
		}
		hard = hard || hasHardLine(p)
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return Nil
	case 1:
		return kept[0]
	}
	return concatDoc{parts: kept, hard: hard}
}

// Join interleaves docs with sep.
func Join(sep Doc, docs []Doc) Doc {
	if len(docs) == 0 {
		return Nil
	}
	parts := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Group marks a layout decision boundary.
func Group(d Doc) Doc {
	if _, ok := d.(nilDoc); ok || d == nil {
		return Nil
	}
	return &groupDoc{doc: d, hard: hasHardLine(d)}
}

// Nest adds indent columns to every line break inside d.
func Nest(indent int, d Doc) Doc {
	if _, ok := d.(nilDoc); ok || d == nil {
		return Nil
	}
	return nestDoc{indent: indent, doc: d, hard: hasHardLine(d)}
}

func hasHardLine(d Doc) bool {
	switch x := d.(type) {
	case lineDoc:
		return x.kind == lineHard
	case concatDoc:
		return x.hard
	case nestDoc:
		return x.hard
	case *groupDoc:
		return x.hard
	}
	return false
}
