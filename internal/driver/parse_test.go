package driver

import (
	"path/filepath"
	"testing"

	"cssfmt/internal/ast"
	"cssfmt/internal/token"
)

func TestParseAndTokenize(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "a.css")
	writeFile(t, path, "@layer base;\na{}")

	pr, err := Parse(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if pr.Bag.HasErrors() || len(pr.Stylesheet.Statements) != 2 {
		t.Fatalf("unexpected parse result: %d statements", len(pr.Stylesheet.Statements))
	}
	if _, ok := pr.Stylesheet.Statements[0].(*ast.AtRule); !ok {
		t.Errorf("first statement is %T", pr.Stylesheet.Statements[0])
	}

	tr, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	last := tr.Tokens[len(tr.Tokens)-1]
	if last.Kind != token.EOF || tr.Tokens[0].Kind != token.AtKeyword {
		t.Errorf("tokens = %v ... %v", tr.Tokens[0].Kind, last.Kind)
	}

	if _, err := Parse(filepath.Join(dir, "missing.css"), 10); err == nil {
		t.Errorf("expected error for a missing file")
	}
}

func TestResolveOptions(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".cssfmt.toml"), "print_width = 100\n")
	opt, path, err := ResolveOptions(filepath.Join(dir, "x.css"), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if opt.PrintWidth != 100 || filepath.Base(path) != ".cssfmt.toml" {
		t.Errorf("opt = %+v, path = %q", opt, path)
	}
}
