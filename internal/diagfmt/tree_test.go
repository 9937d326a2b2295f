package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cssfmt/internal/parser"
	"cssfmt/internal/source"
)

func TestFormatASTTree(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.css", []byte("@media screen {\n  a, b { color: red; }\n}\n@layer base, theme;\n"))
	res := parser.ParseFile(fs.Get(id), parser.Options{})

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, res.Stylesheet, fs); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	out := buf.String()

	wants := []string{
		"Stylesheet t.css (span: 1:1-",
		"├─ AtRule @media (span: 1:1-3:2)",
		"│  ├─ Prelude[media]: screen",
		"│  │  └─ Query: screen",
		"│  └─ Block",
		"│     └─ Rule (span: 2:3-",
		"Selectors",
		"Declaration color: red",
		"└─ AtRule @layer",
		"   └─ Prelude[layer]: base, theme",
		"      ├─ Layer: base",
		"      └─ Layer: theme",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("tree is missing %q:\n%s", want, out)
		}
	}
}

func TestFormatASTTreeKeyframesNames(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("k.less", []byte("@keyframes @spin {}\n@keyframes ~\"fade\" {}\n@keyframes 'x' {}\n"))
	res := parser.ParseFile(fs.Get(id), parser.Options{})

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, res.Stylesheet, fs); err != nil {
		t.Fatalf("FormatASTTree: %v", err)
	}
	for _, want := range []string{"Name[less-variable]: @spin", `Name[less-escaped]: ~"fade"`, "Name[string]: 'x'"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}

func TestFormatASTTreeNil(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, nil, source.NewFileSet()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Stylesheet: <nil>\n" {
		t.Errorf("got %q", buf.String())
	}
}
