package parser

import (
	"fmt"
	"strings"
	"testing"

	"cssfmt/internal/ast"
	"cssfmt/internal/diag"
	"cssfmt/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Stylesheet, *diag.Bag) {
	t.Helper()
	return parseNamed(t, "test.scss", src)
}

// parseNamed - как parseSource, но диалект берётся из имени файла
func parseNamed(t *testing.T, name, src string) (*ast.Stylesheet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	bag := diag.NewBag(100)
	res := ParseFile(file, Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Stylesheet == nil {
		t.Fatalf("nil stylesheet")
	}
	return res.Stylesheet, bag
}

// parseOK разбирает src и падает при любой диагностике
func parseOK(t *testing.T, src string) *ast.Stylesheet {
	t.Helper()
	sheet, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	return sheet
}

// firstAtRule returns the first top-level at-rule of src.
func firstAtRule(t *testing.T, src string) *ast.AtRule {
	t.Helper()
	sheet := parseOK(t, src)
	for _, st := range sheet.Statements {
		if r, ok := st.(*ast.AtRule); ok {
			return r
		}
	}
	t.Fatalf("no at-rule in %q", src)
	return nil
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
