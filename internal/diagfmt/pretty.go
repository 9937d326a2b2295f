package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cssfmt/internal/diag"
	"cssfmt/internal/source"
)

type palette struct {
	err, warn, info, path, caret, note, gutter *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		path:   mk(color.Bold),
		caret:  mk(color.FgGreen, color.Bold),
		note:   mk(color.FgBlue),
		gutter: mk(color.FgHiBlack),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		sev := pal.severity(d.Severity)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col),
			sev.Sprint(d.Severity.String()),
			sev.Sprint(d.Code.ID()),
			d.Message,
		)
		writeContext(w, fs, d.Primary, opts, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s: %s\n",
				pal.note.Sprint("note:"),
				pal.path.Sprintf("%s:%d:%d", displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col),
				n.Msg,
			)
		}
	}
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return fmt.Sprintf("<file %d>", id)
	}
	return f.FormatPath(mode.String(), fs.BaseDir())
}

// writeContext печатает строку span'а с соседями и подчёркивание под ней.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette) {
	f := fs.Get(sp.File)
	if f == nil || opts.Context < 0 {
		return
	}
	start, end := fs.Resolve(sp)
	ctx := uint32(opts.Context)
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	if lines, err := safecast.Conv[uint32](len(f.LineIdx) + 1); err == nil {
		last = min(last, lines)
	}

	gutterWidth := len(fmt.Sprint(last))
	for line := first; line <= last; line++ {
		text := f.GetLine(line)
		text = strings.ReplaceAll(text, "\t", "    ")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, line), text)
		if line != start.Line {
			continue
		}

		raw := f.GetLine(line)
		col := int(start.Col) - 1
		col = min(col, len(raw))
		prefix := strings.ReplaceAll(raw[:col], "\t", "    ")
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			endCol := min(int(end.Col)-1, len(raw))
			width = max(runewidth.StringWidth(strings.ReplaceAll(raw[col:endCol], "\t", "    ")), 1)
		}
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", runewidth.StringWidth(prefix)),
			pal.caret.Sprint(marker),
		)
	}
}
