package testkit

import (
	"strings"
	"testing"

	"cssfmt/internal/ast"
	"cssfmt/internal/source"
)

func TestCheckSpanInvariantsRejectsEscapingChild(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("a.css", []byte("a{}")))
	sheet := &ast.Stylesheet{
		Base: ast.Base{Sp: source.Span{File: sf.ID, Start: 0, End: 3}},
		Statements: []ast.Statement{
			&ast.Comment{Base: ast.Base{Sp: source.Span{File: sf.ID, Start: 1, End: 9}}},
		},
	}
	err := CheckSpanInvariants(sheet, sf)
	if err == nil || !strings.Contains(err.Error(), "outside") {
		t.Fatalf("expected an outside-span error, got %v", err)
	}
}

func TestCheckSpanInvariantsRejectsEmptyStatement(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("a.css", []byte("a{}")))
	sheet := &ast.Stylesheet{
		Base: ast.Base{Sp: source.Span{File: sf.ID, Start: 0, End: 3}},
		Statements: []ast.Statement{
			&ast.Comment{Base: ast.Base{Sp: source.Span{File: sf.ID, Start: 1, End: 1}}},
		},
	}
	if err := CheckSpanInvariants(sheet, sf); err == nil {
		t.Fatal("expected an error for an empty statement span")
	}
}

func TestCheckSpanInvariantsNil(t *testing.T) {
	if err := CheckSpanInvariants(nil, nil); err == nil {
		t.Fatal("expected an error for nil input")
	}
}
