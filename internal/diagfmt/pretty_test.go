package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cssfmt/internal/diag"
	"cssfmt/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("@media screen {\n  a { color: red }\n}\n")
	fileID := fs.Add("/home/user/project/styles/site.css", content, 0)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.SynBadPrelude,
		source.Span{File: fileID, Start: 7, End: 13},
		"malformed @media prelude",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/styles/site.css:1:8"},
		{"Relative path", PathModeRelative, "styles/site.css:1:8"},
		{"Basename only", PathModeBasename, "site.css:1:8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "SYN2006", "malformed @media prelude"} {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettyUnderlinesSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("site.css", []byte("@media screen {\n  a { color: red }\n}\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevWarning, diag.SynBadPrelude, source.Span{File: fileID, Start: 7, End: 13}, "bad"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "site.css:1:8: WARNING SYN2006: bad\n" +
		"1 | @media screen {\n" +
		"  |        ^~~~~~\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("site.css", []byte("a {\n  color: red\n}"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynExpectColon, source.Span{File: fileID, Start: 6, End: 11}, "expected ':'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 5})
	out := buf.String()

	for _, want := range []string{"1 | a {", "2 |   color: red", "3 | }", "  |   ^~~~~"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "4 |") {
		t.Errorf("context went past the last line:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("site.css", []byte("@import url(a.css) layer(;\n"))

	d := diag.New(diag.SevError, diag.SynBadPrelude, source.Span{File: fileID, Start: 8, End: 18}, "bad import")
	d = d.WithNote(source.Span{File: fileID, Start: 19, End: 25}, "layer() is not closed")
	bag := diag.NewBag(1)
	bag.Add(d)

	var hidden, shown bytes.Buffer
	Pretty(&hidden, bag, fs, PrettyOpts{})
	Pretty(&shown, bag, fs, PrettyOpts{ShowNotes: true})

	if strings.Contains(hidden.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", hidden.String())
	}
	if !strings.Contains(shown.String(), "note: site.css:1:20: layer() is not closed") {
		t.Errorf("note missing:\n%s", shown.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("site.css", []byte("@x;"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnknownAtRule, source.Span{File: fileID, Start: 0, End: 2}, "unknown"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"auto", "absolute", "relative", "basename"} {
		m, ok := ParsePathMode(s)
		if !ok || m.String() != s {
			t.Errorf("ParsePathMode(%q) = %v,%v", s, m, ok)
		}
	}
	if _, ok := ParsePathMode("full"); ok {
		t.Errorf("ParsePathMode accepted an unknown mode")
	}
}
