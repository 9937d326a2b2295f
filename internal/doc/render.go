package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintOptions configures Render.
type PrintOptions struct {
	Width       int    // preferred maximum line width
	IndentWidth int    // columns per tab when UseTabs is set
	UseTabs     bool   // indent with tabs instead of spaces
	Newline     string // "\n" when empty
}

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type cmd struct {
	indent int
	mode   mode
	doc    Doc
}

// Render lays out d. Trailing spaces are trimmed before every line break.
func Render(d Doc, opts PrintOptions) string {
	if opts.Newline == "" {
		opts.Newline = "\n"
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}

	var out strings.Builder
	pending := make([]byte, 0, 128) // текущая строка, ещё не сброшенная в out
	pos := 0
	stack := []cmd{{indent: 0, mode: modeBreak, doc: d}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch x := c.doc.(type) {
		case nilDoc:
		case textDoc:
			s := string(x)
			if i := strings.LastIndexByte(s, '\n'); i >= 0 {
				pending = append(pending, s[:i]...)
				out.WriteString(strings.ReplaceAll(string(pending), "\n", opts.Newline))
				out.WriteString(opts.Newline)
				pending = append(pending[:0], s[i+1:]...)
				pos = runewidth.StringWidth(s[i+1:])
				continue
			}
			pending = append(pending, s...)
			pos += runewidth.StringWidth(s)
		case concatDoc:
			for i := len(x.parts) - 1; i >= 0; i-- {
				stack = append(stack, cmd{indent: c.indent, mode: c.mode, doc: x.parts[i]})
			}
		case nestDoc:
			stack = append(stack, cmd{indent: c.indent + x.indent, mode: c.mode, doc: x.doc})
		case *groupDoc:
			next := cmd{indent: c.indent, mode: modeBreak, doc: x.doc}
			if !x.hard {
				flat := cmd{indent: c.indent, mode: modeFlat, doc: x.doc}
				if c.mode == modeFlat || fits(flat, stack, opts.Width-pos) {
					next = flat
				}
			}
			stack = append(stack, next)
		case lineDoc:
			breakHere := false
			switch x.kind {
			case lineHard:
				breakHere = true
			case lineOrSpace:
				breakHere = c.mode == modeBreak
			case lineSoft:
				breakHere = c.mode == modeBreak && !fits(cmd{doc: Nil}, stack, opts.Width-pos-1)
			}
			if !breakHere {
				pending = append(pending, ' ')
				pos++
				continue
			}
			pending = trimTrailingSpace(pending)
			out.Write(pending)
			out.WriteString(opts.Newline)
			pending = appendIndent(pending[:0], c.indent, opts)
			pos = c.indent
		}
	}

	out.Write(trimTrailingSpace(pending))
	return out.String()
}

// fits reports whether next, followed by the pending commands in rest, fits
// into width columns up to the first line break rendered in break mode.
func fits(next cmd, rest []cmd, width int) bool {
	if width < 0 {
		return false
	}
	local := []cmd{next}
	restIdx := len(rest)
	for {
		if len(local) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			local = append(local, rest[restIdx])
			continue
		}
		c := local[len(local)-1]
		local = local[:len(local)-1]

		switch x := c.doc.(type) {
		case nilDoc:
		case textDoc:
			s := string(x)
			if i := strings.IndexByte(s, '\n'); i >= 0 {
				return width-runewidth.StringWidth(s[:i]) >= 0
			}
			width -= runewidth.StringWidth(s)
			if width < 0 {
				return false
			}
		case concatDoc:
			for i := len(x.parts) - 1; i >= 0; i-- {
				local = append(local, cmd{indent: c.indent, mode: c.mode, doc: x.parts[i]})
			}
		case nestDoc:
			local = append(local, cmd{indent: c.indent + x.indent, mode: c.mode, doc: x.doc})
		case *groupDoc:
			m := c.mode
			if x.hard {
				m = modeBreak
			}
			local = append(local, cmd{indent: c.indent, mode: m, doc: x.doc})
		case lineDoc:
			if c.mode == modeBreak || x.kind == lineHard {
				return true
			}
			width--
			if width < 0 {
				return false
			}
		}
	}
}

func appendIndent(buf []byte, indent int, opts PrintOptions) []byte {
	if !opts.UseTabs {
		for i := 0; i < indent; i++ {
			buf = append(buf, ' ')
		}
		return buf
	}
	for i := 0; i < indent/opts.IndentWidth; i++ {
		buf = append(buf, '\t')
	}
	for i := 0; i < indent%opts.IndentWidth; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

func trimTrailingSpace(buf []byte) []byte {
	for len(buf) > 0 && (buf[len(buf)-1] == ' ' || buf[len(buf)-1] == '\t') {
		buf = buf[:len(buf)-1]
	}
	return buf
}
