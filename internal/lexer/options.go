package lexer

import (
	"path/filepath"
	"strings"

	"cssfmt/internal/diag"
)

// Dialect selects the stylesheet syntax. Only SCSS and Less know "//"
// line comments.
type Dialect uint8

const (
	// DialectAuto picks the dialect from the file extension.
	DialectAuto Dialect = iota
	DialectCSS
	DialectSCSS
	DialectLess
)

func (d Dialect) String() string {
	switch d {
	case DialectCSS:
		return "css"
	case DialectSCSS:
		return "scss"
	case DialectLess:
		return "less"
	default:
		return "auto"
	}
}

// DialectFor maps a path to its dialect; unknown extensions (and stdin) are CSS.
func DialectFor(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass":
		return DialectSCSS
	case ".less":
		return DialectLess
	default:
		return DialectCSS
	}
}

// LineComments reports whether "//" starts a comment in d.
func (d Dialect) LineComments() bool {
	return d == DialectSCSS || d == DialectLess
}

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
	Dialect  Dialect       // DialectAuto - по расширению файла
}

func (lx *Lexer) warn(code diag.Code, sp lexSpan, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, lx.span(sp.start, sp.end), msg).Emit()
	}
}

func (lx *Lexer) report(code diag.Code, sp lexSpan, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, lx.span(sp.start, sp.end), msg).Emit()
	}
}

type lexSpan struct{ start, end int }
